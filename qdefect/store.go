// SPDX-License-Identifier: MIT

package qdefect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/rydberg/qdefect/migrations"
	"github.com/katalvlaran/rydberg/quantum"
)

// Store is an sqlite-backed Provider.
// Reads are safe for concurrent use; database/sql pools the connections.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ Provider = (*Store)(nil)

// OpenStore opens (creating if needed) the database file at path and
// applies the embedded migrations.
func OpenStore(ctx context.Context, path string, opts ...StoreOption) (*Store, error) {
	o := gatherStoreOptions(opts...)

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path, logger: o.logger}
	if err := s.migrate(ctx, migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	s.logger.Info("quantum defect store ready", slog.String("path", path))

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		s.logger.Debug("applied migration", slog.String("name", name))
	}

	return nil
}

// Import upserts every species of t in one transaction.
func (s *Store) Import(ctx context.Context, t *Table) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, sp := range t.Species() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO species (element, ry) VALUES (?, ?)
			 ON CONFLICT(element) DO UPDATE SET ry = excluded.ry`,
			sp.Name, sp.Ry); err != nil {
			return fmt.Errorf("importing species %s: %w", sp.Name, err)
		}
		for _, mp := range sp.ModelPotential {
			if _, err = tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO model_potential (element, L, ac, Z, a1, a2, a3, a4, rc)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				sp.Name, mp.L, mp.Ac, mp.Z, mp.A1, mp.A2, mp.A3, mp.A4, mp.Rc); err != nil {
				return fmt.Errorf("importing %s model potential l=%d: %w", sp.Name, mp.L, err)
			}
		}
		for _, rr := range sp.RydbergRitz {
			if _, err = tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO rydberg_ritz (element, L, J, d0, d2, d4, d6, d8)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				sp.Name, rr.L, rr.J, rr.D0, rr.D2, rr.D4, rr.D6, rr.D8); err != nil {
				return fmt.Errorf("importing %s rydberg-ritz l=%d j=%v: %w", sp.Name, rr.L, rr.J, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	s.logger.Info("imported quantum defect table", slog.Int("species", len(t.species)))

	return nil
}

// Parameters implements Provider.
func (s *Store) Parameters(ctx context.Context, st quantum.State) (Parameters, error) {
	if err := st.Validate(); err != nil {
		return Parameters{}, err
	}

	var ry float64
	err := s.db.QueryRowContext(ctx, "SELECT ry FROM species WHERE element = ?", st.Species).Scan(&ry)
	if errors.Is(err, sql.ErrNoRows) {
		return Parameters{}, fmt.Errorf("species %q: %w", st.Species, ErrNotFound)
	}
	if err != nil {
		return Parameters{}, fmt.Errorf("querying species: %w", err)
	}

	var mp ModelPotential
	err = s.db.QueryRowContext(ctx,
		`SELECT L, ac, Z, a1, a2, a3, a4, rc FROM model_potential
		 WHERE element = ? AND L <= ? ORDER BY L DESC LIMIT 1`,
		st.Species, st.L).Scan(&mp.L, &mp.Ac, &mp.Z, &mp.A1, &mp.A2, &mp.A3, &mp.A4, &mp.Rc)
	if errors.Is(err, sql.ErrNoRows) {
		return Parameters{}, fmt.Errorf("%s: model potential: %w", st, ErrNotFound)
	}
	if err != nil {
		return Parameters{}, fmt.Errorf("querying model potential: %w", err)
	}

	rr, err := s.rydbergRitz(ctx, st)
	if err != nil {
		return Parameters{}, err
	}

	return resolve(st, ry, mp, rr)
}

// rydbergRitz mirrors Species.rydbergRitz on the database.
func (s *Store) rydbergRitz(ctx context.Context, st quantum.State) (*RydbergRitz, error) {
	var rr RydbergRitz
	err := s.db.QueryRowContext(ctx,
		`SELECT L, J, d0, d2, d4, d6, d8 FROM rydberg_ritz
		 WHERE element = ? AND L = ? AND abs(J - ?) < ? LIMIT 1`,
		st.Species, st.L, st.J, jMatchTolerance).Scan(&rr.L, &rr.J, &rr.D0, &rr.D2, &rr.D4, &rr.D6, &rr.D8)
	if err == nil {
		return &rr, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("querying rydberg-ritz: %w", err)
	}

	var maxL sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		"SELECT MAX(L) FROM rydberg_ritz WHERE element = ?", st.Species).Scan(&maxL); err != nil {
		return nil, fmt.Errorf("querying rydberg-ritz range: %w", err)
	}
	if !maxL.Valid || int64(st.L) > maxL.Int64 {
		return nil, nil
	}

	return nil, fmt.Errorf("%s: rydberg-ritz: %w", st, ErrNotFound)
}
