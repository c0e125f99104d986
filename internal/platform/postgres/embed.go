package postgres

import "embed"

// MigrationsFS holds the SQL migration files, embedded so the server
// binary can migrate its own schema without a checkout on disk.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
