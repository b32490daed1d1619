// Package levels embeds the shipped level files, addressed by their derived
// resource names (L1.MNI through O8.MNI).
package levels

import "embed"

//go:embed *.MNI
var FS embed.FS
