// Package schemas embeds the JSON Schema documents for the scorer's input and
// output artifacts.
package schemas

import "embed"

// Files holds every *.schema.json document in this directory.
//
//go:embed *.schema.json
var Files embed.FS
