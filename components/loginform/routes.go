package loginform

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes registers the page and submit handlers under basePath on
// mux. It returns the registered patterns in page, submit order.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("loginform: missing component")
	}
	if mux == nil {
		return nil, fmt.Errorf("loginform: missing mux")
	}

	pagePattern := mountPath(basePath, c.opts.PagePath)
	submitPattern := mountPath(basePath, c.opts.SubmitPath)

	mux.Handle(pagePattern, c.PageHandler(basePath))
	mux.Handle(submitPattern, c.SubmitHandler(basePath))

	return []string{pagePattern, submitPattern}, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
