// Package routes declares HTTP endpoints as data and registers them on a ServeMux.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group organizes routes under a common prefix. Children inherit the prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	walk(groups, func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, h)
	})
}

// Patterns returns the fully-qualified "METHOD /path" patterns of the groups
// in registration order.
func Patterns(groups ...Group) []string {
	var patterns []string
	walk(groups, func(pattern string, _ http.HandlerFunc) {
		patterns = append(patterns, pattern)
	})
	return patterns
}

func walk(groups []Group, visit func(string, http.HandlerFunc)) {
	for _, g := range groups {
		walkGroup("", g, visit)
	}
}

func walkGroup(parent string, g Group, visit func(string, http.HandlerFunc)) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		visit(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		walkGroup(prefix, child, visit)
	}
}
