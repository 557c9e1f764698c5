// Package formpage turns OpenAPI operations into browser-ready HTML form
// pages. The root package re-exports the pipeline types and offers one-call
// helpers; the pkg tree holds the composable pieces.
package formpage

import (
	"context"

	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
	"github.com/goliatone/go-formpage/pkg/orchestrator"
	"github.com/goliatone/go-formpage/pkg/render"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// HiddenField names a hidden input injected into rendered forms.
type HiddenField = render.HiddenField

// Request selects the document, operation, and renderer for one generation.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers only need one import for the common path.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the OpenAPI source, builds a form model for the requested
// operation, and renders it using the named renderer. It is the simplest entry
// point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, source pkgopenapi.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// GenerateHTMLFromDocument renders a form using a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateHTMLFromDocument(ctx context.Context, doc pkgopenapi.Document, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:    &doc,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}
