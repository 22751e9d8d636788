package migrations

import "embed"

// FS contains the embedded SQLite schema migrations, applied in file name order.
//
//go:embed *.sql
var FS embed.FS
