// Package migrations embeds the goose migrations shared by every backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
