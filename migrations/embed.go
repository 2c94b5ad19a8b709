package migrations

import "embed"

// FS встроенные SQL-миграции для cmd/migrate
//
//go:embed *.sql
var FS embed.FS
