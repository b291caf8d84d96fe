// Package module mounts self-contained HTTP surfaces under a single path prefix.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/lexi/pkg/middleware"
)

// Module strips its prefix from incoming requests and hands them to an inner
// router wrapped in the module's own middleware stack.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module for a single-level prefix such as "/api".
// It panics on an empty, relative, or nested prefix.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the module's mount point.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the inner router wrapped with the middleware stack.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// ServeHTTP dispatches the request with the module prefix removed.
func (m *Module) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	if path == "" {
		path = "/"
	}

	clone := req.Clone(req.Context())
	clone.URL = new(url.URL)
	*clone.URL = *req.URL
	clone.URL.Path = path
	clone.URL.RawPath = ""
	return clone
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
