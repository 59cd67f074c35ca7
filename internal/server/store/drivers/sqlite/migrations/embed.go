// Package migrations embeds the SQL migration files so the binary can
// bring any database up to date on startup without external tooling.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
