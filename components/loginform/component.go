package loginform

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formpage/pkg/model"
	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
	"github.com/goliatone/go-formpage/pkg/orchestrator"
	"github.com/goliatone/go-formpage/pkg/renderers/vanilla"
	"github.com/goliatone/go-formpage/pkg/uischema"
)

const loginOperationID = "login"

// Component wires the embedded OpenAPI document, the presentation overlay,
// and the vanilla renderer into a pair of net/http handlers.
type Component struct {
	opts     Options
	gen      *orchestrator.Orchestrator
	doc      pkgopenapi.Document
	renderer *vanilla.Renderer
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)

	raw, err := fs.ReadFile(schemaFS, schemaName)
	if err != nil {
		return nil, fmt.Errorf("loginform: read embedded schema: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS(schemaName), raw)
	if err != nil {
		return nil, fmt.Errorf("loginform: wrap embedded schema: %w", err)
	}

	overlay, err := uischema.Load(overlayFS, overlayName)
	if err != nil {
		return nil, fmt.Errorf("loginform: load overlay: %w", err)
	}

	rendererOptions := []vanilla.Option{vanilla.WithDefaultStyles()}
	if opts.Stylesheet != "" {
		rendererOptions = []vanilla.Option{vanilla.WithStylesheet(opts.Stylesheet)}
	}
	renderer, err := vanilla.New(rendererOptions...)
	if err != nil {
		return nil, fmt.Errorf("loginform: configure renderer: %w", err)
	}

	gen := orchestrator.New(
		orchestrator.WithDecorators(overlay.Decorator()),
	)

	return &Component{
		opts:     opts,
		gen:      gen,
		doc:      doc,
		renderer: renderer,
	}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// FormModel builds the decorated login form model with its action resolved
// under basePath.
func (c *Component) FormModel(ctx context.Context, basePath string) (model.FormModel, error) {
	form, err := c.gen.BuildModel(ctx, orchestrator.Request{
		Document:    &c.doc,
		OperationID: loginOperationID,
	})
	if err != nil {
		return model.FormModel{}, fmt.Errorf("loginform: build form model: %w", err)
	}
	form.Endpoint = mountPath(basePath, c.opts.SubmitPath)
	return form, nil
}
