package site

import (
	"embed"
	"io/fs"
)

//go:embed static/*.html
var staticFS embed.FS

// FS returns the embedded dashboard pages rooted at static/.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
