package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

const (
	ValidationRuleMin       = "min"
	ValidationRuleMax       = "max"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single validation constraint applied to a
// field. Numeric bounds and length limits encode their threshold in
// Params["value"] while pattern rules preserve the original expression in
// Params["pattern"]. Exclusivity flags are encoded as string values to keep
// JSON snapshots stable.
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Param returns a named rule parameter or the empty string.
func (r ValidationRule) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// Field models an individual input inside a generated form. Struct fields are
// annotated so fixtures can serialise them directly.
type Field struct {
	Name         string            `json:"name"`
	Type         FieldType         `json:"type"`
	Format       string            `json:"format,omitempty"`
	Required     bool              `json:"required"`
	Label        string            `json:"label,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty"`
	Help         string            `json:"help,omitempty"`
	Autocomplete string            `json:"autocomplete,omitempty"`
	Default      any               `json:"default,omitempty"`
	Enum         []any             `json:"enum,omitempty"`
	Validations  []ValidationRule  `json:"validations,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Meta returns a metadata value or the empty string.
func (f Field) Meta(name string) string {
	if f.Metadata == nil {
		return ""
	}
	return f.Metadata[name]
}

// SetMeta stores a metadata value, allocating the map on first use.
func (f *Field) SetMeta(name, value string) {
	if f.Metadata == nil {
		f.Metadata = make(map[string]string)
	}
	f.Metadata[name] = value
}

// Rule returns the validation rule of the given kind, if present.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// FormModel is the top-level representation renderers and the submission
// decoder consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Title       string            `json:"title,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the named field and whether it exists.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Decorator enriches a form model after the canonical builder pass.
type Decorator interface {
	Decorate(form *FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate implements Decorator.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}
