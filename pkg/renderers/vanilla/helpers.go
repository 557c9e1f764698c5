package vanilla

import (
	"strings"

	"github.com/goliatone/go-formpage/pkg/model"
)

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "fp-" + strings.ReplaceAll(trimmed, ".", "-")
}

// nativeInputWidgets lists the widget hints that translate directly into an
// input type attribute.
var nativeInputWidgets = map[string]struct{}{
	"text":     {},
	"email":    {},
	"password": {},
	"tel":      {},
	"url":      {},
	"number":   {},
	"date":     {},
	"time":     {},
	"hidden":   {},
	"color":    {},
	"range":    {},
}

// inputTypeFor maps a model field onto the closest native input widget. A
// widget hint from the UI overlay or a document extension wins; otherwise
// integers and numbers use the browser's number widget so the control
// restricts input to numeric characters.
func inputTypeFor(field model.Field) string {
	if widget := field.Meta("widget"); widget != "" {
		if _, ok := nativeInputWidgets[widget]; ok {
			return widget
		}
	}

	switch field.Type {
	case model.FieldTypeInteger, model.FieldTypeNumber:
		return "number"
	case model.FieldTypeBoolean:
		return "checkbox"
	}

	switch field.Format {
	case "email":
		return "email"
	case "password":
		return "password"
	case "date":
		return "date"
	case "time":
		return "time"
	case "date-time":
		return "datetime-local"
	case "uri", "url":
		return "url"
	case "tel":
		return "tel"
	default:
		return "text"
	}
}

// methodFor splits the requested verb into the attribute browsers can submit
// natively and an optional override travelling as a hidden input.
func methodFor(modelMethod, override string) (attr string, hiddenOverride string) {
	method := strings.ToUpper(strings.TrimSpace(override))
	if method == "" {
		method = strings.ToUpper(strings.TrimSpace(modelMethod))
	}
	switch method {
	case "", "POST":
		return "post", ""
	case "GET":
		return "get", ""
	default:
		return "post", method
	}
}

func stepFor(field model.Field) string {
	switch field.Type {
	case model.FieldTypeInteger:
		return "1"
	case model.FieldTypeNumber:
		return "any"
	default:
		return ""
	}
}
