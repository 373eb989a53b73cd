// Package schemas embeds the JSON Schema documents shipped with shipline.
package schemas

import _ "embed"

// ConfigSchema is the JSON Schema for shipline.yaml.
//
//go:embed shipline.schema.json
var ConfigSchema []byte
