package render

import (
	"embed"
	"io/fs"
)

//go:embed static/*.css
var staticFS embed.FS

// Static returns the embedded assets rooted at the static directory,
// so "styles.css" is served under StylesheetPath.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
