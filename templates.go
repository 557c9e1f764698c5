package formpage

import (
	"io/fs"

	vanilla "github.com/goliatone/go-formpage/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StaticAssets exposes the stylesheet bundle shipped with the vanilla
// renderer. Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServer(http.FS(formpage.StaticAssets())),
//	  ),
//	)
func StaticAssets() fs.FS {
	return vanilla.AssetsFS()
}
