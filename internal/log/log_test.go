package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Level
	}{
		{input: "debug", expected: LevelDebug},
		{input: "info", expected: LevelInfo},
		{input: "warn", expected: LevelWarn},
		{input: "warning", expected: LevelWarn},
		{input: "error", expected: LevelError},
		{input: "ERROR", expected: LevelError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLevel("shout")
		require.Error(t, err)
	})
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "client", Value: uint16(3)}, Uint16("client", 3))
	assert.Equal(t, Field{Key: "tx", Value: uint32(9)}, Uint32("tx", 9))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, "error", Err(assert.AnError).Key)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()
	logger.Log(context.Background(), LevelError, "dropped")

	assert.Same(t, logger, logger.With(String("k", "v")))
	assert.False(t, logger.Enabled(LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
}
