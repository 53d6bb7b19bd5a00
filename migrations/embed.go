// Package migrations embeds the SQL schema for the relational media.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
