package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model pipeline.
type RenderOptions struct {
	// Method overrides the HTTP method declared by the form model. Browsers
	// only submit GET and POST natively, so renderers translate other verbs
	// into POST submissions plus a hidden _method input.
	Method string

	// Values pre-populates rendered controls keyed by field name.
	Values map[string]string

	// Errors surfaces server-side validation feedback keyed by field name.
	Errors map[string][]string

	// FormErrors carries messages that do not belong to a single field.
	FormErrors []string

	// HiddenFields renders additional hidden inputs (CSRF tokens, method
	// overrides). Use the helpers in this package to build the map.
	HiddenFields map[string]string

	// Stylesheet links an external stylesheet from the rendered page.
	Stylesheet string

	// Theme carries resolved go-theme configuration (tokens, CSS variables,
	// asset resolution) for renderers that emit themed chrome.
	Theme *theme.RendererConfig
}
