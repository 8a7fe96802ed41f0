package formkit

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Submitter sends the values of a validated form to a backend.
type Submitter interface {
	Submit(ctx context.Context, formID string, values map[string]string) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, formID string, values map[string]string) error

func (f SubmitterFunc) Submit(ctx context.Context, formID string, values map[string]string) error {
	return f(ctx, formID, values)
}

var errNetwork = errors.New("network error")

// SimulatedSubmitter stands in for a backend: it waits for the configured
// latency and then fails a share of submissions.
type SimulatedSubmitter struct {
	latency     time.Duration
	failureRate float64
	random      func() float64
}

// SimulatedOption configures a SimulatedSubmitter.
type SimulatedOption func(*SimulatedSubmitter)

// WithRandom replaces the source of the failure roll, a value in [0, 1).
func WithRandom(random func() float64) SimulatedOption {
	return func(s *SimulatedSubmitter) {
		if random != nil {
			s.random = random
		}
	}
}

func NewSimulatedSubmitter(latency time.Duration, failureRate float64, opts ...SimulatedOption) *SimulatedSubmitter {
	s := &SimulatedSubmitter{
		latency:     latency,
		failureRate: failureRate,
		random:      rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, formID string, values map[string]string) error {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if s.random() < s.failureRate {
		return errNetwork
	}
	return nil
}
