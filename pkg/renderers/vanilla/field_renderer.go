package vanilla

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-formpage/pkg/model"
	"github.com/goliatone/go-formpage/pkg/render"
)

// fieldRenderer builds the per-field markup in Go so templates only deal with
// pre-rendered fragments. Keeping attribute assembly out of the template makes
// escaping auditable in one place.
type fieldRenderer struct {
	values map[string]string
	errors map[string][]string
}

func newFieldRenderer(options render.RenderOptions) *fieldRenderer {
	return &fieldRenderer{
		values: options.Values,
		errors: options.Errors,
	}
}

func (r *fieldRenderer) render(field model.Field) string {
	var b strings.Builder
	b.Grow(512)

	id := controlID(field.Name)
	fieldErrors := r.errors[field.Name]

	b.WriteString(`<div class="field grid gap-2" data-field="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`">`)

	if field.Label != "" {
		b.WriteString(`<label class="field-label" for="`)
		b.WriteString(id)
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(field.Label))
		if field.Required {
			b.WriteString(`<span class="field-required" aria-hidden="true">*</span>`)
		}
		b.WriteString(`</label>`)
	}

	switch {
	case field.Meta("widget") == "textarea":
		r.writeTextarea(&b, field, id, len(fieldErrors) > 0)
	case len(field.Enum) > 0:
		r.writeSelect(&b, field, id, len(fieldErrors) > 0)
	default:
		r.writeInput(&b, field, id, len(fieldErrors) > 0)
	}

	if field.Help != "" {
		// Help text may carry sanitized inline markup from the UI overlay.
		b.WriteString(`<p class="field-help" id="`)
		b.WriteString(id)
		b.WriteString(`-help">`)
		b.WriteString(field.Help)
		b.WriteString(`</p>`)
	}

	if len(fieldErrors) > 0 {
		b.WriteString(`<ul class="field-errors" id="`)
		b.WriteString(id)
		b.WriteString(`-errors" data-validation="error">`)
		for _, message := range fieldErrors {
			b.WriteString(`<li>`)
			b.WriteString(html.EscapeString(message))
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

func (r *fieldRenderer) writeInput(b *strings.Builder, field model.Field, id string, invalid bool) {
	inputType := inputTypeFor(field)

	b.WriteString(`<input class="field-control" type="`)
	b.WriteString(inputType)
	b.WriteString(`" id="`)
	b.WriteString(id)
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`"`)

	if inputType == "checkbox" {
		if r.value(field) == "true" {
			b.WriteString(` checked`)
		}
		b.WriteString(` value="true"`)
	} else if value := r.value(field); value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}

	if field.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(field.Placeholder))
		b.WriteString(`"`)
	}
	if field.Autocomplete != "" {
		b.WriteString(` autocomplete="`)
		b.WriteString(html.EscapeString(field.Autocomplete))
		b.WriteString(`"`)
	}
	if field.Required {
		b.WriteString(` required`)
	}
	if step := stepFor(field); step != "" {
		b.WriteString(` step="`)
		b.WriteString(step)
		b.WriteString(`"`)
	}
	writeValidationAttrs(b, field)
	writeDescribedBy(b, field, id, invalid)
	if invalid {
		b.WriteString(` aria-invalid="true"`)
	}
	b.WriteString(`>`)
}

func (r *fieldRenderer) writeTextarea(b *strings.Builder, field model.Field, id string, invalid bool) {
	b.WriteString(`<textarea class="field-control" id="`)
	b.WriteString(id)
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`"`)

	if field.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(field.Placeholder))
		b.WriteString(`"`)
	}
	if field.Required {
		b.WriteString(` required`)
	}
	if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
		b.WriteString(` minlength="`)
		b.WriteString(html.EscapeString(rule.Param("value")))
		b.WriteString(`"`)
	}
	if rule, ok := field.Rule(model.ValidationRuleMaxLength); ok {
		b.WriteString(` maxlength="`)
		b.WriteString(html.EscapeString(rule.Param("value")))
		b.WriteString(`"`)
	}
	writeDescribedBy(b, field, id, invalid)
	if invalid {
		b.WriteString(` aria-invalid="true"`)
	}
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(r.value(field)))
	b.WriteString(`</textarea>`)
}

func (r *fieldRenderer) writeSelect(b *strings.Builder, field model.Field, id string, invalid bool) {
	b.WriteString(`<select class="field-control" id="`)
	b.WriteString(id)
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`"`)
	if field.Required {
		b.WriteString(` required`)
	}
	writeDescribedBy(b, field, id, invalid)
	if invalid {
		b.WriteString(` aria-invalid="true"`)
	}
	b.WriteString(`>`)

	selected := r.value(field)
	if !field.Required || selected == "" {
		b.WriteString(`<option value=""></option>`)
	}
	for _, option := range field.Enum {
		value := fmt.Sprint(option)
		b.WriteString(`<option value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
		if value == selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select>`)
}

func (r *fieldRenderer) value(field model.Field) string {
	if value, ok := r.values[field.Name]; ok {
		return value
	}
	if field.Default != nil {
		return fmt.Sprint(field.Default)
	}
	return ""
}

func writeValidationAttrs(b *strings.Builder, field model.Field) {
	numeric := field.Type == model.FieldTypeInteger || field.Type == model.FieldTypeNumber

	if rule, ok := field.Rule(model.ValidationRuleMin); ok && numeric {
		b.WriteString(` min="`)
		b.WriteString(html.EscapeString(rule.Param("value")))
		b.WriteString(`"`)
	}
	if rule, ok := field.Rule(model.ValidationRuleMax); ok && numeric {
		b.WriteString(` max="`)
		b.WriteString(html.EscapeString(rule.Param("value")))
		b.WriteString(`"`)
	}
	if !numeric {
		if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
			b.WriteString(` minlength="`)
			b.WriteString(html.EscapeString(rule.Param("value")))
			b.WriteString(`"`)
		}
		if rule, ok := field.Rule(model.ValidationRuleMaxLength); ok {
			b.WriteString(` maxlength="`)
			b.WriteString(html.EscapeString(rule.Param("value")))
			b.WriteString(`"`)
		}
		if rule, ok := field.Rule(model.ValidationRulePattern); ok {
			b.WriteString(` pattern="`)
			b.WriteString(html.EscapeString(rule.Param("pattern")))
			b.WriteString(`"`)
		}
	}
}

func writeDescribedBy(b *strings.Builder, field model.Field, id string, invalid bool) {
	var refs []string
	if field.Help != "" {
		refs = append(refs, id+"-help")
	}
	if invalid {
		refs = append(refs, id+"-errors")
	}
	if len(refs) == 0 {
		return
	}
	b.WriteString(` aria-describedby="`)
	b.WriteString(strings.Join(refs, " "))
	b.WriteString(`"`)
}
