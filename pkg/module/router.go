package module

import (
	"net/http"
	"slices"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment
// and falls back to a native ServeMux for everything else.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler function on the fallback mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// HandleNativeHandler registers an http.Handler on the fallback mux.
func (r *Router) HandleNativeHandler(pattern string, handler http.Handler) {
	r.native.Handle(pattern, handler)
}

// Mount registers a module under its prefix, replacing any module already there.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// Prefixes returns the mounted module prefixes in sorted order.
func (r *Router) Prefixes() []string {
	prefixes := make([]string, 0, len(r.modules))
	for p := range r.modules {
		prefixes = append(prefixes, p)
	}
	slices.Sort(prefixes)
	return prefixes
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := trimTrailingSlash(req)

	if m, ok := r.modules[firstSegment(path)]; ok {
		m.ServeHTTP(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func trimTrailingSlash(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
