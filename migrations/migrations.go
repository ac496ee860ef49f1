// Package migrations embeds the contractual SQL schema.
//
// Constraint names declared here are part of the public error contract:
// postgres adapters map them verbatim to domain errors.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
