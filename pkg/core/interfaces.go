package core

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Logger interface for progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// SlogLogger implements Logger on top of a structured logger
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger; nil means slog.Default()
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Printf formats the message and emits it at info level
func (l *SlogLogger) Printf(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Rand is the source of uniform randomness threaded through every builder.
// *rand.Rand satisfies it. Implementations are owned by the caller and are
// never retained past a single call.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
	// Intn returns a number in [0, n); n > 0
	Intn(n int) int
}

// NewSeededRand creates a seeded random source.
// If seed is 0 the current time is used; the effective seed is returned so runs can be reproduced.
func NewSeededRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
