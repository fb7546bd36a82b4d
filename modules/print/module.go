package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/vk/bytehook/internal/ctxlog"
	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out is where the hook writes. Defaults to os.Stdout.
	Out io.Writer
}

// Input defines the arguments for the print hook.
type Input struct {
	// Label, when set, prefixes the printed line.
	Label string `bhgo:"label"`
}

// Register registers the handler with the dispatcher engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHook("print", &registry.RegisteredHook{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        m.onHook,
	})
}

// onHook prints the payload's debug representation.
func (m *Module) onHook(ctx context.Context, inputRaw any, v payload.View) error {
	input := inputRaw.(*Input)
	ctxlog.FromContext(ctx).Debug("Printing payload.", "label", input.Label, "bytes", v.Len())

	out := m.Out
	if out == nil {
		out = os.Stdout
	}

	if input.Label != "" {
		_, err := fmt.Fprintf(out, "%s: hook called with payload %s\n", input.Label, v)
		return err
	}
	_, err := fmt.Fprintf(out, "hook called with payload %s\n", v)
	return err
}
