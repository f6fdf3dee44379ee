package pagedef

import (
	"embed"
	"io/fs"
)

//go:embed pages/*.yaml
var embeddedPages embed.FS

// EmbeddedFS returns the bundled sample page definitions.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPages, "pages")
	if err != nil {
		panic(err)
	}
	return sub
}
