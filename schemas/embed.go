// Package schemas holds the JSON Schema documents for the drafter's file formats.
package schemas

import "embed"

// Schema file names
const (
	Draft    = "draft.schema.json"
	Template = "template.schema.json"
)

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
