// Package submission validates and types browser form posts against a form
// model, mirroring the client-side constraints on the server where they are
// authoritative.
package submission

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formpage/pkg/model"
)

// Decoded carries the typed result of a successful decode. Values holds one
// entry per decoded field: string, int64, float64, or bool depending on the
// field type. Raw preserves the submitted text for re-rendering.
type Decoded struct {
	Values map[string]any
	Raw    map[string]string
}

// String returns the decoded string value for name.
func (d Decoded) String(name string) string {
	value, _ := d.Values[name].(string)
	return value
}

// Int returns the decoded integer value for name.
func (d Decoded) Int(name string) int64 {
	value, _ := d.Values[name].(int64)
	return value
}

// Float returns the decoded numeric value for name.
func (d Decoded) Float(name string) float64 {
	value, _ := d.Values[name].(float64)
	return value
}

// Bool returns the decoded boolean value for name.
func (d Decoded) Bool(name string) bool {
	value, _ := d.Values[name].(bool)
	return value
}

// Decode checks the posted values against the form model. It never panics on
// malformed input; unknown keys are ignored. The returned error map is keyed
// by field name and is nil when the submission is valid.
func Decode(form model.FormModel, values url.Values) (Decoded, map[string][]string) {
	decoded := Decoded{
		Values: make(map[string]any, len(form.Fields)),
		Raw:    make(map[string]string, len(form.Fields)),
	}
	fieldErrors := make(map[string][]string)

	for _, field := range form.Fields {
		raw := strings.TrimSpace(values.Get(field.Name))
		decoded.Raw[field.Name] = raw

		if raw == "" {
			if field.Type == model.FieldTypeBoolean {
				// Unchecked checkboxes are absent from the payload.
				decoded.Values[field.Name] = false
				continue
			}
			if field.Required {
				fieldErrors[field.Name] = append(fieldErrors[field.Name], "field required")
			}
			continue
		}

		value, messages := decodeField(field, raw)
		if len(messages) > 0 {
			fieldErrors[field.Name] = append(fieldErrors[field.Name], messages...)
			continue
		}
		decoded.Values[field.Name] = value
	}

	if len(fieldErrors) == 0 {
		return decoded, nil
	}
	return decoded, fieldErrors
}

func decodeField(field model.Field, raw string) (any, []string) {
	switch field.Type {
	case model.FieldTypeInteger:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, []string{"value is not a valid integer"}
		}
		if messages := checkNumericRules(field, float64(parsed)); len(messages) > 0 {
			return nil, messages
		}
		return parsed, nil
	case model.FieldTypeNumber:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, []string{"value is not a valid number"}
		}
		if messages := checkNumericRules(field, parsed); len(messages) > 0 {
			return nil, messages
		}
		return parsed, nil
	case model.FieldTypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "on", "1", "yes":
			return true, nil
		case "false", "off", "0", "no":
			return false, nil
		default:
			return nil, []string{"value is not a valid boolean"}
		}
	default:
		if messages := checkStringRules(field, raw); len(messages) > 0 {
			return nil, messages
		}
		if len(field.Enum) > 0 && !enumContains(field.Enum, raw) {
			return nil, []string{"value is not a permitted choice"}
		}
		return raw, nil
	}
}

func checkNumericRules(field model.Field, value float64) []string {
	var messages []string

	if rule, ok := field.Rule(model.ValidationRuleMin); ok {
		if bound, err := strconv.ParseFloat(rule.Param("value"), 64); err == nil {
			exclusive := rule.Param("exclusive") == "true"
			if (exclusive && value <= bound) || (!exclusive && value < bound) {
				comparison := "greater than or equal to"
				if exclusive {
					comparison = "greater than"
				}
				messages = append(messages, fmt.Sprintf("ensure this value is %s %s", comparison, rule.Param("value")))
			}
		}
	}
	if rule, ok := field.Rule(model.ValidationRuleMax); ok {
		if bound, err := strconv.ParseFloat(rule.Param("value"), 64); err == nil {
			exclusive := rule.Param("exclusive") == "true"
			if (exclusive && value >= bound) || (!exclusive && value > bound) {
				comparison := "less than or equal to"
				if exclusive {
					comparison = "less than"
				}
				messages = append(messages, fmt.Sprintf("ensure this value is %s %s", comparison, rule.Param("value")))
			}
		}
	}

	return messages
}

func checkStringRules(field model.Field, value string) []string {
	var messages []string

	if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
		if bound, err := strconv.Atoi(rule.Param("value")); err == nil && len([]rune(value)) < bound {
			messages = append(messages, fmt.Sprintf("ensure this value has at least %d characters", bound))
		}
	}
	if rule, ok := field.Rule(model.ValidationRuleMaxLength); ok {
		if bound, err := strconv.Atoi(rule.Param("value")); err == nil && len([]rune(value)) > bound {
			messages = append(messages, fmt.Sprintf("ensure this value has at most %d characters", bound))
		}
	}
	if rule, ok := field.Rule(model.ValidationRulePattern); ok {
		pattern := rule.Param("pattern")
		if re, err := regexp.Compile(pattern); err == nil && !re.MatchString(value) {
			messages = append(messages, fmt.Sprintf("string does not match pattern %q", pattern))
		}
	}

	return messages
}

func enumContains(options []any, value string) bool {
	for _, option := range options {
		if fmt.Sprint(option) == value {
			return true
		}
	}
	return false
}
