// Package testutil provides shared hook modules for tests: a recorder that
// captures the views it receives, a no-op, and a hook that always fails.
package testutil

import (
	"context"
	"reflect"
	"sync"

	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

// RecorderModule registers a "recorder" hook kind that captures a copy of
// every view it is invoked with, together with the tag argument of the
// invoking attachment. Order of capture is invocation order.
type RecorderModule struct {
	mu    sync.Mutex
	views [][]byte
	tags  []string
}

type recorderInput struct {
	Tag string `bhgo:"tag"`
}

// Register registers the "recorder" hook's Go handler.
func (m *RecorderModule) Register(r *registry.Registry) {
	r.RegisterHook("recorder", &registry.RegisteredHook{
		NewInput:  func() any { return new(recorderInput) },
		InputType: reflect.TypeOf(recorderInput{}),
		Fn: func(_ context.Context, inputRaw any, v payload.View) error {
			input := inputRaw.(*recorderInput)

			m.mu.Lock()
			defer m.mu.Unlock()
			m.views = append(m.views, v.Bytes())
			m.tags = append(m.tags, input.Tag)
			return nil
		},
	})
}

// Views returns copies of the recorded views, in invocation order.
func (m *RecorderModule) Views() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.views))
	copy(out, m.views)
	return out
}

// Tags returns the tag arguments seen, in invocation order.
func (m *RecorderModule) Tags() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.tags))
	copy(out, m.tags)
	return out
}
