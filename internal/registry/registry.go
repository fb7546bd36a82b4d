package registry

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/vk/bytehook/internal/payload"
)

// Module is the interface that all hook modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// HandlerFunc is the shape every hook handler takes: the decoded input struct
// produced by NewInput plus a read-only view of the payload. The view must
// not be retained beyond the call.
type HandlerFunc func(ctx context.Context, input any, v payload.View) error

// RegisteredHook holds the compiled Go parts of a hook kind.
type RegisteredHook struct {
	// NewInput returns a pointer to a fresh zero value of the kind's input
	// struct, ready for argument decoding.
	NewInput func() any
	// InputType is the (non-pointer) type NewInput allocates.
	InputType reflect.Type
	// Fn is invoked once per attachment per dispatch.
	Fn HandlerFunc
}

// Registry holds all registered hook handlers for a single application instance.
type Registry struct {
	hooks map[string]*RegisteredHook
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		hooks: make(map[string]*RegisteredHook),
	}
}

// RegisterHook registers a Go handler under a hook kind name. Registering the
// same kind twice is a programmer error and panics.
func (r *Registry) RegisterHook(name string, h *RegisteredHook) {
	if _, exists := r.hooks[name]; exists {
		panic(fmt.Sprintf("hook handler with name '%s' already registered", name))
	}
	slog.Debug("Registering hook handler.", "name", name)
	r.hooks[name] = h
}

// Resolve returns the handler for a hook kind, or an error naming the known
// kinds when the lookup fails.
func (r *Registry) Resolve(name string) (*RegisteredHook, error) {
	h, ok := r.hooks[name]
	if !ok {
		return nil, fmt.Errorf("unknown hook kind %q (registered kinds: %v)", name, r.Kinds())
	}
	return h, nil
}

// Kinds returns the registered hook kind names in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.hooks))
	for name := range r.hooks {
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	return kinds
}

// Len returns the number of registered hook kinds.
func (r *Registry) Len() int {
	return len(r.hooks)
}
