// Package defaults embeds the stock content set used when no content
// directory is configured.
package defaults

import (
	"embed"
	"io/fs"
)

//go:embed monsters abilities items drop_tables
var fsys embed.FS

// FS returns the embedded content tree.
func FS() fs.FS {
	return fsys
}
