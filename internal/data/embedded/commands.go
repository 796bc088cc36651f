// Package embedded provides access to data files compiled into the binary.
package embedded

import _ "embed"

// CommandCatalogData contains the embedded command catalog YAML: every
// keyword the bot understands, its help text and its parameter schema.
//
//go:embed commands.yaml
var CommandCatalogData []byte
