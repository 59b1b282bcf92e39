// Package migrations embeds the versioned goose migrations, one directory
// per SQL dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// Dir maps a goose dialect name to its migration directory.
func Dir(gooseDialect string) string {
	if gooseDialect == "sqlite3" {
		return "sqlite"
	}
	return gooseDialect
}
