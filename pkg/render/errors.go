package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formpage/pkg/model"
)

// ErrorMapping splits a validation payload into field-level and form-level
// messages keyed by the field names used throughout the render pipeline.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload normalises server error payloads into field identifiers
// that renderers can consume. Messages keyed by unknown field names are
// treated as form-level errors so they are not lost.
func MapErrorPayload(form model.FormModel, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	// Keys are walked in sorted order so form-level messages collected from
	// unknown fields keep a stable order.
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		normalized := normalizeMessages(payload[rawKey])
		if len(normalized) == 0 {
			continue
		}

		key := strings.TrimSpace(rawKey)
		if _, ok := form.Field(key); ok {
			mapping.Fields[key] = append(mapping.Fields[key], normalized...)
			continue
		}
		mapping.Form = append(mapping.Form, normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
