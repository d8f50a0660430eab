package postgres

import "embed"

// MigrationsFS holds the schema migrations applied by cmd/migrate.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
