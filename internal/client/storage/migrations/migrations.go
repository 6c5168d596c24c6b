// Package migrations embeds the schema for the durable client store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
