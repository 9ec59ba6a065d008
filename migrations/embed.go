// Package migrations embeds SQL migrations applied by the local store on open.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
