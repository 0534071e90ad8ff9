// Package web embeds the browser client served alongside the API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the client assets rooted at the static directory, so
// index.html sits at the filesystem root.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
