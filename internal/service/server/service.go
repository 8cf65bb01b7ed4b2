package server

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
	"github.com/oshokin/berlin-clock/internal/logger"
)

// service renders clock states for the transport.
// It holds no mutable state, so calls need no locking.
type service struct {
	// clock is the time source for Now.
	clock clockwork.Clock
	// converter renders requested times.
	converter berlinclock.Converter
}

// newService creates a service reading the current time from clock.
// Requested times are rendered by berlinclock.BerlinClock unless converter is set.
func newService(clock clockwork.Clock, converter berlinclock.Converter) *service {
	if converter == nil {
		converter = berlinclock.BerlinClock{}
	}

	return &service{
		clock:     clock,
		converter: converter,
	}
}

// Convert renders the provided HH:MM:SS time.
func (s *service) Convert(ctx context.Context, text string) (string, error) {
	rows, err := s.converter.ConvertTime(text)
	if err != nil {
		return "", err
	}

	logger.DebugKV(ctx, "Time converted", "time", text)

	return rows, nil
}

// Now renders the current time of the service clock.
func (s *service) Now(ctx context.Context) (string, error) {
	t := berlinclock.TimeOf(s.clock.Now())

	state, err := berlinclock.Show(t)
	if err != nil {
		return "", err
	}

	logger.DebugKV(ctx, "Current time rendered", "time", t.String())

	return state.String(), nil
}
