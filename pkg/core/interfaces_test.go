package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Printf("added %d objects", 3)

	assert.Contains(t, buf.String(), "added 3 objects")
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestNewSeededRand(t *testing.T) {
	a, seedA := NewSeededRand(42)
	b, seedB := NewSeededRand(42)
	require.Equal(t, int64(42), seedA)
	require.Equal(t, seedA, seedB)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	_, seed := NewSeededRand(0)
	assert.NotZero(t, seed)
}
