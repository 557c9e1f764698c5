// Package template declares the template engine seam the HTML renderer
// depends on, mirroring the github.com/goliatone/go-template engine contract
// so either the bundled pongo2 adapter or the upstream engine can sit behind
// it.
package template
