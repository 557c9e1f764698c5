// Package openapi defines the document, operation, and schema contracts the
// form pipeline consumes, keeping kin-openapi types out of the public API.
// Implementations of the Loader and Parser interfaces live under
// internal/openapi; construction helpers live in the top-level formpage
// package to avoid import cycles.
package openapi
