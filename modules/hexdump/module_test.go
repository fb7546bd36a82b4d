package hexdump

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

func resolveHook(t *testing.T, m *Module) *registry.RegisteredHook {
	t.Helper()
	r := registry.New()
	m.Register(r)
	h, err := r.Resolve("hexdump")
	require.NoError(t, err)
	return h
}

func TestOnHook_SingleRow(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	h := resolveHook(t, &Module{Out: &out})

	v := payload.New([]byte{1, 2, 3}).View()
	require.NoError(t, h.Fn(context.Background(), h.NewInput(), v))

	assert.Equal(t, "00000000  01 02 03\n", out.String())
}

func TestOnHook_WidthWrapsRows(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	h := resolveHook(t, &Module{Out: &out})

	input := &Input{Width: 2}
	v := payload.New([]byte{0xde, 0xad, 0xbe, 0xef, 0x42}).View()
	require.NoError(t, h.Fn(context.Background(), input, v))

	assert.Equal(t, "00000000  de ad\n00000002  be ef\n00000004  42\n", out.String())
}

func TestOnHook_Prefix(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	h := resolveHook(t, &Module{Out: &out})

	input := &Input{Prefix: "dump: "}
	v := payload.New([]byte{0xff}).View()
	require.NoError(t, h.Fn(context.Background(), input, v))

	assert.Equal(t, "dump: 00000000  ff\n", out.String())
}

func TestOnHook_EmptyPayloadPrintsNothing(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	h := resolveHook(t, &Module{Out: &out})

	require.NoError(t, h.Fn(context.Background(), h.NewInput(), payload.New(nil).View()))
	assert.Empty(t, out.String())
}
