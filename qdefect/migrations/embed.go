// SPDX-License-Identifier: MIT

// Package migrations embeds the SQL schema of the quantum-defect store.
package migrations

import "embed"

// FS contains all SQL migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
