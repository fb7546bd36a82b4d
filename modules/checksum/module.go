package checksum

import (
	"context"
	"crypto/sha256"
	"fmt"
	"hash/crc32"
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

// Input defines the arguments for the checksum hook.
type Input struct {
	// Algorithm selects the digest: "crc32" (default) or "sha256".
	Algorithm string `bhgo:"algorithm"`
}

// Register registers the handler with the dispatcher engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHook("checksum", &registry.RegisteredHook{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        m.onHook,
	})
}

// onHook digests the payload and prints the result.
func (m *Module) onHook(ctx context.Context, inputRaw any, v payload.View) error {
	input := inputRaw.(*Input)

	algorithm := input.Algorithm
	if algorithm == "" {
		algorithm = "crc32"
	}
	ctxlog.FromContext(ctx).Debug("Checksumming payload.", "algorithm", algorithm, "bytes", v.Len())

	out := m.Out
	if out == nil {
		out = os.Stdout
	}

	switch algorithm {
	case "crc32":
		_, err := fmt.Fprintf(out, "crc32(payload) = 0x%08x\n", crc32.ChecksumIEEE(v.Bytes()))
		return err
	case "sha256":
		sum := sha256.Sum256(v.Bytes())
		_, err := fmt.Fprintf(out, "sha256(payload) = %x\n", sum)
		return err
	default:
		return fmt.Errorf("unknown checksum algorithm %q (supported: crc32, sha256)", algorithm)
	}
}
