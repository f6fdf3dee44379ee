package lookup

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

// MountPath returns the route prefix of the component under basePath.
func (c *Component) MountPath(basePath string) string {
	return mountPath(basePath, c.opts.RoutePath)
}

// RegisterRoutes registers the handler under basePath and returns the
// pattern used.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("lookup: missing mux")
	}
	pattern := c.MountPath(basePath) + "/{name}"
	mux.Handle(pattern, c.Handler())
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimRight(strings.TrimSpace(routePath), "/")

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
	return strings.TrimRight(basePath, "/") + routePath
}
