// Package vanilla renders a form model into a complete dependency-free HTML
// page: semantic markup, utility styling classes, and a native form POST.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-formpage/pkg/model"
	"github.com/goliatone/go-formpage/pkg/render"
	rendertemplate "github.com/goliatone/go-formpage/pkg/render/template"
	gotemplate "github.com/goliatone/go-formpage/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet links an external stylesheet from the rendered page. The
// per-request render.RenderOptions value takes precedence when set.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithDefaultStyles inlines the bundled utility-class stylesheet into the
// page so it renders styled without serving assets separately.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	stylesheet   string
	inlineStyles bool
}

// Ensure the implementation satisfies the renderer contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		stylesheet:   cfg.stylesheet,
		inlineStyles: cfg.inlineStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full HTML page for the form model. Field markup is
// assembled in Go and handed to the page template as pre-rendered fragments.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	fields := newFieldRenderer(options)
	fieldMarkup := make([]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		fieldMarkup = append(fieldMarkup, fields.render(field))
	}

	methodAttr, override := methodFor(form.Method, options.Method)
	hidden := options.HiddenFields
	if override != "" {
		hidden = render.MergeHiddenFields(hidden, render.MethodOverride(override))
	}
	hiddenMarkup := make([]any, 0, len(hidden))
	for _, field := range render.SortedHiddenFields(hidden) {
		hiddenMarkup = append(hiddenMarkup, map[string]any{
			"name":  field.Name,
			"value": field.Value,
		})
	}

	formErrors := make([]any, 0, len(options.FormErrors))
	for _, message := range render.MergeFormErrors(nil, options.FormErrors...) {
		formErrors = append(formErrors, message)
	}

	title := form.Title
	if title == "" {
		title = form.Summary
	}
	if title == "" {
		title = form.OperationID
	}

	submitLabel := form.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}

	data := map[string]any{
		"page": r.pageContext(title, options),
		"form": map[string]any{
			"id":          form.OperationID,
			"action":      form.Endpoint,
			"method":      methodAttr,
			"title":       title,
			"description": form.Description,
			"submitLabel": submitLabel,
			"fields":      fieldMarkup,
			"hidden":      hiddenMarkup,
			"errors":      formErrors,
		},
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// Message describes the confirmation page rendered after a successful
// submission.
type Message struct {
	Title     string
	Body      string
	BackHref  string
	BackLabel string
}

// RenderMessage produces a standalone result page carrying a message, used by
// HTTP handlers to confirm a successful form submission.
func (r *Renderer) RenderMessage(ctx context.Context, msg Message, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	backLabel := msg.BackLabel
	if backLabel == "" && msg.BackHref != "" {
		backLabel = "Back"
	}

	data := map[string]any{
		"page": r.pageContext(msg.Title, options),
		"result": map[string]any{
			"message":   msg.Body,
			"backHref":  msg.BackHref,
			"backLabel": backLabel,
		},
	}

	result, err := r.templates.RenderTemplate("templates/result.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render result template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) pageContext(title string, options render.RenderOptions) map[string]any {
	stylesheet := options.Stylesheet
	if stylesheet == "" {
		stylesheet = r.stylesheet
	}

	page := map[string]any{
		"title":      title,
		"stylesheet": stylesheet,
	}
	if r.inlineStyles {
		page["inlineStyles"] = defaultStylesheet()
	}

	if cfg := options.Theme; cfg != nil {
		if len(cfg.CSSVars) > 0 {
			var vars strings.Builder
			vars.WriteString(":root{")
			for _, name := range sortedKeys(cfg.CSSVars) {
				vars.WriteString(name)
				vars.WriteString(":")
				vars.WriteString(cfg.CSSVars[name])
				vars.WriteString(";")
			}
			vars.WriteString("}")
			page["themeVars"] = vars.String()
		}
		if cfg.AssetURL != nil {
			if href := cfg.AssetURL("vanilla.stylesheet"); href != "" {
				page["themeStylesheet"] = href
			}
		}
	}

	return page
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
