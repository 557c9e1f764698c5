package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Labeler func(string) string
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
	}
}

// Builder converts OpenAPI operations into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Builder{opts: opts}
}

// Build transforms an OpenAPI operation into a FormModel suitable for
// rendering. The request body object schema is flattened into an ordered
// field list: required properties first in declaration order, then the
// remaining properties sorted by name.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if err := validateOperation(op); err != nil {
		return FormModel{}, err
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
	}
	if form.Title == "" {
		form.Title = op.Summary
	}

	form.Metadata = metadataFromExtensions(op.Extensions)
	mergeMetadata(&form.Metadata, metadataFromExtensions(op.RequestBody.Extensions))

	fields, err := b.fieldsFromObject("", op.RequestBody)
	if err != nil {
		return FormModel{}, err
	}
	form.Fields = fields

	return form, nil
}

func validateOperation(op pkgopenapi.Operation) error {
	if op.ID == "" {
		return errors.New("model builder: operation id is required")
	}
	if op.Method == "" {
		return errors.New("model builder: operation method is required")
	}
	if op.Path == "" {
		return errors.New("model builder: operation path is required")
	}
	return nil
}

func (b *Builder) fieldsFromObject(prefix string, schema pkgopenapi.Schema) ([]Field, error) {
	if len(schema.Properties) == 0 {
		return nil, nil
	}

	ordered := orderedPropertyNames(schema)
	fields := make([]Field, 0, len(ordered))
	for _, name := range ordered {
		property := schema.Properties[name]
		path := joinFieldPath(prefix, name)
		required := schema.IsRequired(name)

		switch property.Type {
		case "object":
			nested, err := b.fieldsFromObject(path, property)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nested...)
		case "array":
			return nil, fmt.Errorf("model builder: field %q: array fields are not supported", path)
		default:
			fields = append(fields, b.fieldFromPrimitive(path, property, required))
		}
	}
	return fields, nil
}

// orderedPropertyNames yields required properties in their declaration order
// followed by the remaining properties sorted by name, so rendering stays
// deterministic regardless of map iteration.
func orderedPropertyNames(schema pkgopenapi.Schema) []string {
	seen := make(map[string]struct{}, len(schema.Properties))
	names := make([]string, 0, len(schema.Properties))

	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; ok {
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)

	return append(names, rest...)
}

func (b *Builder) fieldFromPrimitive(path string, schema pkgopenapi.Schema, required bool) Field {
	field := Field{
		Name:     path,
		Type:     fieldTypeFor(schema.Type),
		Format:   schema.Format,
		Required: required,
		Label:    b.labelFor(path, schema),
		Help:     schema.Description,
		Default:  schema.Default,
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}
	field.Validations = validationRules(schema)
	field.Metadata = metadataFromExtensions(schema.Extensions)
	return field
}

// metadataFromExtensions flattens vendor extension hints into string metadata.
// Both the nested "x-formpage" map and flattened "x-formpage-*" keys feed the
// same namespace, with the prefix stripped from the resulting keys.
func metadataFromExtensions(ext map[string]any) map[string]string {
	if len(ext) == 0 {
		return nil
	}

	result := make(map[string]string)
	for key, value := range ext {
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for nestedKey, nestedValue := range nested {
				if str, ok := stringifyExtensionValue(nestedValue); ok {
					result[nestedKey] = str
				}
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			if str, ok := stringifyExtensionValue(value); ok {
				result[strings.TrimPrefix(key, extensionNamespace+"-")] = str
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

const extensionNamespace = "x-formpage"

func stringifyExtensionValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func mergeMetadata(target *map[string]string, updates map[string]string) {
	if len(updates) == 0 {
		return
	}
	if *target == nil {
		*target = make(map[string]string, len(updates))
	}
	for key, value := range updates {
		(*target)[key] = value
	}
}

func (b *Builder) labelFor(path string, schema pkgopenapi.Schema) string {
	if title := strings.TrimSpace(schema.Title); title != "" {
		return title
	}
	name := path
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		name = path[idx+1:]
	}
	return b.opts.Labeler(name)
}

func fieldTypeFor(schemaType string) FieldType {
	switch schemaType {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	default:
		return FieldTypeString
	}
}

func validationRules(schema pkgopenapi.Schema) []ValidationRule {
	var rules []ValidationRule

	if schema.Minimum != nil {
		rules = append(rules, boundRule(ValidationRuleMin, *schema.Minimum, schema.ExclusiveMinimum))
	}
	if schema.Maximum != nil {
		rules = append(rules, boundRule(ValidationRuleMax, *schema.Maximum, schema.ExclusiveMaximum))
	}
	if schema.MinLength != nil {
		rules = append(rules, ValidationRule{
			Kind:   ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.Itoa(*schema.MinLength)},
		})
	}
	if schema.MaxLength != nil {
		rules = append(rules, ValidationRule{
			Kind:   ValidationRuleMaxLength,
			Params: map[string]string{"value": strconv.Itoa(*schema.MaxLength)},
		})
	}
	if schema.Pattern != "" {
		rules = append(rules, ValidationRule{
			Kind:   ValidationRulePattern,
			Params: map[string]string{"pattern": schema.Pattern},
		})
	}

	return rules
}

func boundRule(kind string, value float64, exclusive bool) ValidationRule {
	params := map[string]string{
		"value": strconv.FormatFloat(value, 'f', -1, 64),
	}
	if exclusive {
		params["exclusive"] = "true"
	}
	return ValidationRule{Kind: kind, Params: params}
}

func joinFieldPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
