package uischema

// FieldHints carries the presentation overrides for a single field. Widget
// selects the control used to render the field, such as "textarea" or
// "password", when the schema type alone picks the wrong one.
type FieldHints struct {
	Label        string `yaml:"label,omitempty"`
	Placeholder  string `yaml:"placeholder,omitempty"`
	Help         string `yaml:"help,omitempty"`
	Autocomplete string `yaml:"autocomplete,omitempty"`
	Widget       string `yaml:"widget,omitempty"`
}

// Document is a parsed UI overlay. Form pins the overlay to a specific
// operation id; an empty Form applies to any model it decorates.
type Document struct {
	Form        string                `yaml:"form,omitempty"`
	Title       string                `yaml:"title,omitempty"`
	Description string                `yaml:"description,omitempty"`
	SubmitLabel string                `yaml:"submitLabel,omitempty"`
	Fields      map[string]FieldHints `yaml:"fields,omitempty"`
}

// AppliesTo reports whether the overlay targets the given operation id.
func (d Document) AppliesTo(operationID string) bool {
	return d.Form == "" || d.Form == operationID
}
