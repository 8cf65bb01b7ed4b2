package server

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
)

// TestService_Convert renders valid times and passes domain errors through.
func TestService_Convert(t *testing.T) {
	t.Parallel()

	s := newService(clockwork.NewFakeClock(), nil)

	rows, err := s.Convert(context.Background(), "13:17:01")
	require.NoError(t, err)
	require.Equal(t, "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO", rows)

	_, err = s.Convert(context.Background(), "1:2:3")
	require.ErrorIs(t, err, berlinclock.ErrInvalidFormat)
}

// TestService_Now renders the time of the injected clock.
func TestService_Now(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 56, 1, 0, time.UTC))
	s := newService(clock, nil)

	rows, err := s.Now(context.Background())
	require.NoError(t, err)
	require.Equal(t, "O\nRROO\nRROO\nYYRYYRYYRYY\nYOOO", rows)

	clock.Advance(time.Second)

	rows, err = s.Now(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Y\nRROO\nRROO\nYYRYYRYYRYY\nYOOO", rows)
}

// stubConverter is a Converter stub recording the last input.
type stubConverter struct {
	// last is the most recent text passed to ConvertTime.
	last string
}

// ConvertTime returns a fixed rendering.
func (c *stubConverter) ConvertTime(text string) (string, error) {
	c.last = text

	return "RRRR", nil
}

// TestService_ConvertUsesConverter routes Convert through the injected converter.
func TestService_ConvertUsesConverter(t *testing.T) {
	t.Parallel()

	converter := new(stubConverter)
	s := newService(clockwork.NewFakeClock(), converter)

	rows, err := s.Convert(context.Background(), "12:00:00")
	require.NoError(t, err)
	require.Equal(t, "RRRR", rows)
	require.Equal(t, "12:00:00", converter.last)

	require.IsType(t, berlinclock.BerlinClock{}, newService(clockwork.NewFakeClock(), nil).converter)
}

// TestResolveListenAddress prefers the override and otherwise binds the configured port on all interfaces.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("clock.example.com:50551", "")
	require.NoError(t, err)
	require.Equal(t, ":50551", addr)

	addr, err = resolveListenAddress("clock.example.com:50551", "127.0.0.1:9090")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}
