// Package routes maps route names to path patterns and back to URLs.
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Registry holds named path patterns such as "/tasks/:id/edit".
type Registry struct {
	mu    sync.RWMutex
	paths map[string]string
}

func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]string)}
}

// Add registers path under name. Re-adding a name with a different path is an error.
func (r *Registry) Add(name, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.paths[name]; ok && existing != path {
		return fmt.Errorf("route %q already registered as %s", name, existing)
	}
	r.paths[name] = path
	return nil
}

// Reverse builds the URL of route name, substituting :params in order.
func (r *Registry) Reverse(name string, params ...any) (string, error) {
	r.mu.RLock()
	path, ok := r.paths[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	segments := strings.Split(path, "/")
	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if next >= len(params) {
			return "", fmt.Errorf("route %q: missing value for %s", name, seg)
		}
		segments[i] = url.PathEscape(fmt.Sprint(params[next]))
		next++
	}
	if next != len(params) {
		return "", fmt.Errorf("route %q: got %d params, want %d", name, len(params), next)
	}

	return strings.Join(segments, "/"), nil
}

// MustReverse is Reverse for names known at compile time.
func (r *Registry) MustReverse(name string, params ...any) string {
	path, err := r.Reverse(name, params...)
	if err != nil {
		panic(err)
	}
	return path
}
