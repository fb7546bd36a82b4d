package hexdump

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/vk/bytehook/internal/ctxlog"
	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

// defaultWidth is the number of bytes rendered per output row.
const defaultWidth = 16

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out is where the hook writes. Defaults to os.Stdout.
	Out io.Writer
}

// Input defines the arguments for the hexdump hook.
type Input struct {
	// Prefix is prepended to every output row.
	Prefix string `bhgo:"prefix"`
	// Width is the number of bytes per row; non-positive means the default.
	Width int `bhgo:"width"`
}

// Register registers the handler with the dispatcher engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHook("hexdump", &registry.RegisteredHook{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        m.onHook,
	})
}

// onHook renders the payload as offset-prefixed hex rows.
func (m *Module) onHook(ctx context.Context, inputRaw any, v payload.View) error {
	input := inputRaw.(*Input)

	width := input.Width
	if width <= 0 {
		width = defaultWidth
	}
	ctxlog.FromContext(ctx).Debug("Hex dumping payload.", "bytes", v.Len(), "width", width)

	out := m.Out
	if out == nil {
		out = os.Stdout
	}

	for off := 0; off < v.Len(); off += width {
		end := off + width
		if end > v.Len() {
			end = v.Len()
		}

		cells := make([]string, 0, end-off)
		for i := off; i < end; i++ {
			cells = append(cells, fmt.Sprintf("%02x", v.At(i)))
		}
		if _, err := fmt.Fprintf(out, "%s%08x  %s\n", input.Prefix, off, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
