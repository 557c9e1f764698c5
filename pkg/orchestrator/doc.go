// Package orchestrator coordinates the loader, parser, model builder,
// decorators, and renderer registry behind a single Generate call. Missing
// dependencies are initialised with the built-in implementations so callers
// can start from a bare constructor.
package orchestrator
