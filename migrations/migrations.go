// Package migrations embeds the SQL migration files so the server binary
// can apply them without access to the source tree.
package migrations

import "embed"

// FS holds the embedded goose migration files.
//
//go:embed *.sql
var FS embed.FS
