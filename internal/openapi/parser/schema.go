package parser

import (
	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
)

// convertSchema maps a kin-openapi schema tree into the decoupled public
// representation, preserving the constraints the form pipeline consumes.
func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		properties := make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			properties[name] = convertSchema(property)
		}
		schema.Properties = properties
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	if src.Min != nil {
		value := *src.Min
		schema.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		schema.Maximum = &value
	}
	schema.ExclusiveMinimum = src.ExclusiveMin
	schema.ExclusiveMaximum = src.ExclusiveMax
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}
	if src.Pattern != "" {
		schema.Pattern = src.Pattern
	}
	schema.Extensions = extractExtensions(src.Extensions)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
