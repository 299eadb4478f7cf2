// Package assets embeds the default sprites so the game also runs in the
// browser, where there is no filesystem to load them from.
package assets

import "embed"

//go:embed *.png
var FS embed.FS
