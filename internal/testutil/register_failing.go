package testutil

import (
	"context"
	"errors"
	"reflect"

	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

// ErrAlwaysFails is the error returned by every "failing" hook invocation.
var ErrAlwaysFails = errors.New("hook failed on purpose")

// FailingModule registers a "failing" hook kind whose invocations always
// return ErrAlwaysFails, for exercising the error-collection path.
type FailingModule struct{}

type failingInput struct{}

// Register registers the "failing" hook's Go handler.
func (m *FailingModule) Register(r *registry.Registry) {
	r.RegisterHook("failing", &registry.RegisteredHook{
		NewInput:  func() any { return new(failingInput) },
		InputType: reflect.TypeOf(failingInput{}),
		Fn: func(context.Context, any, payload.View) error {
			return ErrAlwaysFails
		},
	})
}
