// Package uischema layers presentation hints over generated form models.
// OpenAPI documents describe wire contracts; the YAML overlay supplies what
// they cannot: page titles, submit labels, and per-field labels, placeholders,
// help text, and autocomplete hints. Help text may carry a small amount of
// inline HTML, which is sanitized on load.
package uischema
