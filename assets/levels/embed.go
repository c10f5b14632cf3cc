// Package levels embeds the authored level files shipped with the game
package levels

import "embed"

// FS holds level1.yaml .. levelN.yaml
//
//go:embed *.yaml
var FS embed.FS
