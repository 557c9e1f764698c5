package loginform

import (
	"net/http"

	theme "github.com/goliatone/go-theme"
)

// GuardFunc runs before a request is handled. A non-nil error rejects the
// request with 403 Forbidden.
type GuardFunc func(r *http.Request) error

type Options struct {
	PagePath     string
	SubmitPath   string
	Stylesheet   string
	MaxBodyBytes int64
	Guard        GuardFunc
	Theme        *theme.RendererConfig
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PagePath:     "/",
		SubmitPath:   "/login",
		MaxBodyBytes: 1 << 20,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.PagePath == "" {
		opts.PagePath = "/"
	}
	if opts.SubmitPath == "" {
		opts.SubmitPath = "/login"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	return opts
}

func WithPagePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PagePath = path
	}
}

func WithSubmitPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SubmitPath = path
	}
}

// WithStylesheet links an external stylesheet instead of inlining the default
// styles into the page head.
func WithStylesheet(href string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Stylesheet = href
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithTheme applies a resolved theme configuration to every rendered page.
func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}
