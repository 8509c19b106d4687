package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/interfaces"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// Addr builds a deterministic test address from a single byte.
func Addr(b byte) entities.Address {
	var a entities.Address
	a.Address[19] = b
	return a
}

// MustPicks parses a pick string and fails the test on error.
func MustPicks(t *testing.T, s string) entities.Picks {
	p, err := entities.ParsePicks(s)
	require.NoError(t, err)
	return p
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}
func (l NopLogger) WithFields(map[string]interface{}) interfaces.Logger { return l }
func (l NopLogger) WithError(error) interfaces.Logger                   { return l }

// FixedSource is a randomness source that always draws the same numbers.
type FixedSource struct {
	Numbers entities.Picks
	Err     error
	Calls   int
}

// Draw returns the fixed numbers regardless of the round.
func (s *FixedSource) Draw(_ context.Context, _ *entities.Round) (entities.Picks, error) {
	s.Calls++
	if s.Err != nil {
		return entities.Picks{}, s.Err
	}
	return s.Numbers, nil
}

// SkipIfShort skips the test if running in short mode.
func SkipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping test in short mode")
	}
}
