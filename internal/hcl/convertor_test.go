package hcl

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseArgs turns a flat HCL attribute body into an argument expression map,
// the same shape the loader produces from an 'arguments' block.
func parseArgs(t *testing.T, src string) map[string]hcl.Expression {
	t.Helper()

	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "args.hcl")
	require.False(t, diags.HasErrors(), "parse diags: %s", diags)

	attrs, diags := file.Body.JustAttributes()
	require.False(t, diags.HasErrors(), "attr diags: %s", diags)

	args := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		args[name] = attr.Expr
	}
	return args
}

type testInput struct {
	Algorithm string `bhgo:"algorithm"`
	Width     int    `bhgo:"width"`
	Enabled   bool   `bhgo:"enabled"`
	ignored   string //nolint:unused // verifies unexported fields are skipped
}

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("populates tagged fields", func(t *testing.T) {
		t.Parallel()
		args := parseArgs(t, `
algorithm = "sha256"
width     = 8
enabled   = true
`)
		var input testInput
		require.NoError(t, NewConverter().DecodeBody(ctx, &input, args, nil))

		assert.Equal(t, "sha256", input.Algorithm)
		assert.Equal(t, 8, input.Width)
		assert.True(t, input.Enabled)
	})

	t.Run("missing arguments keep zero values", func(t *testing.T) {
		t.Parallel()
		args := parseArgs(t, `algorithm = "crc32"`)

		var input testInput
		require.NoError(t, NewConverter().DecodeBody(ctx, &input, args, nil))

		assert.Equal(t, "crc32", input.Algorithm)
		assert.Zero(t, input.Width)
		assert.False(t, input.Enabled)
	})

	t.Run("no arguments at all", func(t *testing.T) {
		t.Parallel()
		var input testInput
		require.NoError(t, NewConverter().DecodeBody(ctx, &input, nil, nil))
		assert.Zero(t, input)
	})

	t.Run("unsupported argument is rejected", func(t *testing.T) {
		t.Parallel()
		args := parseArgs(t, `bogus = 1`)

		var input testInput
		err := NewConverter().DecodeBody(ctx, &input, args, nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, `unsupported argument "bogus"`)
		assert.ErrorContains(t, err, "algorithm")
	})

	t.Run("implicit conversion number to string", func(t *testing.T) {
		t.Parallel()
		args := parseArgs(t, `algorithm = 5`)

		var input testInput
		require.NoError(t, NewConverter().DecodeBody(ctx, &input, args, nil))
		assert.Equal(t, "5", input.Algorithm)
	})

	t.Run("incompatible type errors", func(t *testing.T) {
		t.Parallel()
		args := parseArgs(t, `width = "not a number"`)

		var input testInput
		err := NewConverter().DecodeBody(ctx, &input, args, nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to decode argument 'width'")
	})

	t.Run("non-pointer target errors", func(t *testing.T) {
		t.Parallel()
		var input testInput
		err := NewConverter().DecodeBody(ctx, input, nil, nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "non-nil pointer")
	})
}
