package uischema

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// Parse decodes a YAML overlay document and sanitizes the help markup.
func Parse(raw []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("uischema: parse overlay: %w", err)
	}
	doc.sanitize()
	return doc, nil
}

// Load reads and parses an overlay document from an fs.FS.
func Load(fsys fs.FS, name string) (Document, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("uischema: read overlay %q: %w", name, err)
	}
	return Parse(raw)
}

func (d *Document) sanitize() {
	if len(d.Fields) == 0 {
		return
	}
	for name, hints := range d.Fields {
		hints.Help = sanitizeHelpMarkup(hints.Help)
		d.Fields[name] = hints
	}
}

// sanitizeHelpMarkup strips everything except a small inline-formatting
// vocabulary so overlay authors cannot inject scripts into rendered pages.
func sanitizeHelpMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(helpSanitizer().Sanitize(trimmed))
}

func helpSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("a", "strong", "em", "b", "i", "code", "br", "span")
		policy.AllowAttrs("href", "rel", "target").OnElements("a")
		policy.AllowAttrs("class").OnElements("span")
		policy.RequireNoFollowOnLinks(true)
		helpPolicy = policy
	})
	return helpPolicy
}
