// SPDX-License-Identifier: MIT

package qdefect

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a table encoding.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota

	// FormatTOML decodes with github.com/pelletier/go-toml/v2.
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

//go:embed data/defaults.yaml
var defaultsYAML []byte

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return DecodeTable(bytes.NewReader(defaultsYAML), FormatYAML)
})

// DefaultTable returns the embedded table (hydrogen and rubidium).
// The value is decoded once and shared; Table is immutable.
func DefaultTable() (*Table, error) { return defaultTable() }

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// LoadTable reads a YAML (.yaml/.yml) or TOML (.toml) table from disk.
func LoadTable(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	t, err := DecodeTable(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// DecodeTable decodes a table document from r. Unknown keys are rejected
// so that typos in coefficient names do not silently become zeros.
func DecodeTable(r io.Reader, format Format) (*Table, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml table: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding toml table: %w", err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}

	return NewTable(doc.Species...)
}
