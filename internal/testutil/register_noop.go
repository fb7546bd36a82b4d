package testutil

import (
	"context"
	"reflect"

	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

// NoopModule registers a "noop" hook kind that accepts no arguments and does
// nothing.
type NoopModule struct{}

type noopInput struct{}

// Register registers the "noop" hook's Go handler.
func (m *NoopModule) Register(r *registry.Registry) {
	r.RegisterHook("noop", &registry.RegisteredHook{
		NewInput:  func() any { return new(noopInput) },
		InputType: reflect.TypeOf(noopInput{}),
		Fn: func(context.Context, any, payload.View) error {
			return nil
		},
	})
}
