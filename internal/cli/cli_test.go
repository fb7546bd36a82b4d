package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("no arguments selects the demo grid", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		cfg, shouldExit, err := Parse(nil, &out)

		require.NoError(t, err)
		assert.False(t, shouldExit)
		require.NotNil(t, cfg)
		assert.Empty(t, cfg.GridPath)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("positional grid path", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		cfg, _, err := Parse([]string{"grids/run.hcl"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "grids/run.hcl", cfg.GridPath)
	})

	t.Run("grid flag wins over positional", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		cfg, _, err := Parse([]string{"-grid", "a.hcl", "b.hcl"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.GridPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		cfg, _, err := Parse([]string{"-g", "short.hcl"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.GridPath)
	})

	t.Run("help requests clean exit", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		cfg, shouldExit, err := Parse([]string{"-h"}, &out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("log level is case-insensitive and validated", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		cfg, _, err := Parse([]string{"-log-level", "DEBUG"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)

		_, _, err = Parse([]string{"-log-level", "verbose"}, &out)
		require.Error(t, err)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log format", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		_, _, err := Parse([]string{"-log-format", "yaml"}, &out)

		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid log-format")
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		_, _, err := Parse([]string{"--bogus"}, &out)

		require.Error(t, err)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
