package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.GridPath)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{GridPath: "x.hcl", LogFormat: "json", LogLevel: "warn"})
		require.NoError(t, err)
		assert.Equal(t, "x.hcl", cfg.GridPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{LogFormat: "xml"})
		assert.ErrorContains(t, err, "invalid log format")
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{LogLevel: "loud"})
		assert.ErrorContains(t, err, "invalid log level")
	})
}
