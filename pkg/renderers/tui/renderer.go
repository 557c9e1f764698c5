// Package tui fills a form model through interactive terminal prompts,
// producing the same url-encoded payload a browser submission would carry.
package tui

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formpage/pkg/model"
	"github.com/goliatone/go-formpage/pkg/render"
)

type Option func(*Renderer)

// WithDriver injects an alternate prompt driver, primarily for tests.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Renderer walks the form fields as terminal prompts. Render returns the
// answers url-encoded so callers can POST them to the form endpoint directly.
type Renderer struct {
	driver PromptDriver
}

// Ensure the implementation satisfies the renderer contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the terminal renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "application/x-www-form-urlencoded"
}

// Render prompts for every field and returns the encoded payload.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	values, err := r.Fill(ctx, form, options)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// Fill prompts for every field and returns the collected values.
func (r *Renderer) Fill(ctx context.Context, form model.FormModel, options render.RenderOptions) (url.Values, error) {
	if r.driver == nil {
		return nil, fmt.Errorf("tui renderer: prompt driver is nil")
	}

	values := url.Values{}
	for name, value := range options.HiddenFields {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			values.Set(trimmed, value)
		}
	}

	for _, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		answer, err := r.promptField(ctx, field, options.Values[field.Name])
		if err != nil {
			return nil, err
		}
		if answer == "" && !field.Required {
			continue
		}
		values.Set(field.Name, answer)
	}

	return values, nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, preset string) (string, error) {
	label := field.Label
	if label == "" {
		label = field.Name
	}

	switch {
	case field.Type == model.FieldTypeBoolean:
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: preset == "true",
			Help:    field.Help,
		})
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(answer), nil
	case len(field.Enum) > 0:
		options := make([]string, 0, len(field.Enum))
		defaultIndex := 0
		for i, option := range field.Enum {
			value := fmt.Sprint(option)
			options = append(options, value)
			if value == preset {
				defaultIndex = i
			}
		}
		index, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: defaultIndex,
			Help:         field.Help,
		})
		if err != nil {
			return "", err
		}
		return options[index], nil
	default:
		defaultValue := preset
		if defaultValue == "" && field.Default != nil {
			defaultValue = fmt.Sprint(field.Default)
		}
		return r.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   defaultValue,
			Help:      field.Help,
			Validator: fieldValidator(field),
		})
	}
}

// fieldValidator mirrors the server-side rules so mistakes surface before the
// payload leaves the terminal.
func fieldValidator(field model.Field) func(string) error {
	return func(value string) error {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if field.Required {
				return fmt.Errorf("%s is required", displayName(field))
			}
			return nil
		}

		switch field.Type {
		case model.FieldTypeInteger:
			parsed, err := strconv.ParseInt(trimmed, 10, 64)
			if err != nil {
				return fmt.Errorf("%s must be a whole number", displayName(field))
			}
			return checkBounds(field, float64(parsed))
		case model.FieldTypeNumber:
			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", displayName(field))
			}
			return checkBounds(field, parsed)
		}
		return nil
	}
}

func checkBounds(field model.Field, value float64) error {
	if rule, ok := field.Rule(model.ValidationRuleMin); ok {
		if bound, err := strconv.ParseFloat(rule.Param("value"), 64); err == nil && value < bound {
			return fmt.Errorf("%s must be at least %s", displayName(field), rule.Param("value"))
		}
	}
	if rule, ok := field.Rule(model.ValidationRuleMax); ok {
		if bound, err := strconv.ParseFloat(rule.Param("value"), 64); err == nil && value > bound {
			return fmt.Errorf("%s must be at most %s", displayName(field), rule.Param("value"))
		}
	}
	return nil
}

func displayName(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}
