package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches OpenAPI documents from different sources (filesystem, fs.FS,
// HTTP). Implementations live under internal/openapi but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources. The defaults stay
// offline-first: HTTP sources are rejected unless a client is injected or the
// fallback is enabled explicitly.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; nil means
	// fs sources are resolved against the embedded document bundle the
	// caller supplies elsewhere, so loaders treat nil as an error.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless AllowHTTPFallback
	// is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles a default HTTP client when none is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote OpenAPI documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables the default HTTP client for URL sources.
func WithHTTPFallback(enabled bool) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = enabled
	}
}

// WithRequestTimeout caps how long remote document fetches may take.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		if timeout > 0 {
			opts.RequestTimeout = timeout
		}
	}
}

// NewLoaderOptions applies LoaderOption functions over the defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
