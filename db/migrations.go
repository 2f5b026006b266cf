// Package db holds the SQL migrations and query sources of the annotation database.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
