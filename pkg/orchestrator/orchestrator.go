package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalloader "github.com/goliatone/go-formpage/internal/openapi/loader"
	internalparser "github.com/goliatone/go-formpage/internal/openapi/parser"
	"github.com/goliatone/go-formpage/pkg/model"
	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
	"github.com/goliatone/go-formpage/pkg/render"
	"github.com/goliatone/go-formpage/pkg/renderers/vanilla"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the generated form
// model before rendering, in registration order.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		for _, decorator := range decorators {
			if decorator == nil {
				continue
			}
			o.decorators = append(o.decorators, decorator)
		}
	}
}

// WithThemeSelector resolves theme/variant choices through go-theme ahead of
// rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeAssetBase sets the URL prefix used to resolve theme asset keys
// into hrefs for the rendered page.
func WithThemeAssetBase(base string) Option {
	return func(o *Orchestrator) {
		o.themeAssetBase = base
	}
}

// WithHiddenFields merges hidden inputs into every render request.
func WithHiddenFields(fields ...render.HiddenField) Option {
	return func(o *Orchestrator) {
		o.hiddenFields = render.MergeHiddenFields(o.hiddenFields, fields...)
	}
}

// Orchestrator coordinates the full pipeline from OpenAPI document to
// rendered output.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	themeSelector   theme.ThemeSelector
	themeAssetBase  string
	hiddenFields    map[string]string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalloader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalparser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if !o.registry.Has(defaultRendererName) {
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise vanilla renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register vanilla renderer: %w", err)
		}
	}
}

// Request describes the inputs required to render a form from an OpenAPI
// operation.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when
	// Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *pkgopenapi.Document

	// OperationID selects which operation to render into a form.
	OperationID string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as method
	// overrides, prefilled values, or server-side errors.
	RenderOptions render.RenderOptions

	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Both are optional.
	ThemeName    string
	ThemeVariant string
}

// Generate executes the loader → parser → builder → decorator → renderer
// sequence and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, renderer, options, err := o.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render %q: %w", renderer.Name(), err)
	}
	return output, nil
}

// BuildModel runs the pipeline up to (and including) decoration, returning
// the form model without rendering it. HTTP handlers use this to share one
// model between rendering and submission decoding.
func (o *Orchestrator) BuildModel(ctx context.Context, req Request) (model.FormModel, error) {
	form, _, _, err := o.prepare(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}
	return form, nil
}

func (o *Orchestrator) prepare(ctx context.Context, req Request) (model.FormModel, render.Renderer, render.RenderOptions, error) {
	var zero model.FormModel
	if ctx == nil {
		return zero, nil, render.RenderOptions{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return zero, nil, render.RenderOptions{}, err
	}
	if err := o.initialiseErr; err != nil {
		return zero, nil, render.RenderOptions{}, err
	}
	if req.OperationID == "" {
		return zero, nil, render.RenderOptions{}, errors.New("orchestrator: operation id is required")
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return zero, nil, render.RenderOptions{}, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return zero, nil, render.RenderOptions{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}

	op, ok := operations[req.OperationID]
	if !ok {
		return zero, nil, render.RenderOptions{}, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	form, err := o.builder.Build(op)
	if err != nil {
		return zero, nil, render.RenderOptions{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}

	for _, decorator := range o.decorators {
		if err := decorator.Decorate(&form); err != nil {
			return zero, nil, render.RenderOptions{}, fmt.Errorf("orchestrator: decorate form model: %w", err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return zero, nil, render.RenderOptions{}, err
	}

	options := req.RenderOptions
	if len(o.hiddenFields) > 0 {
		merged := render.MergeHiddenFields(o.hiddenFields)
		for name, value := range options.HiddenFields {
			merged = render.MergeHiddenFields(merged, render.Hidden(name, value))
		}
		options.HiddenFields = merged
	}
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return zero, nil, render.RenderOptions{}, err
		}
		options.Theme = cfg
	}

	return form, renderer, options, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: request requires a source or document")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}
