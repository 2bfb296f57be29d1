// Package assets provides the sample content embedded in showcase.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed content/*.json
var FS embed.FS

// Content returns the embedded content directory as the root of an fs.FS.
func Content() fs.FS {
	sub, err := fs.Sub(FS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
