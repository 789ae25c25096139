package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/metrics"
)

// Breaker guards calls to an upstream API with a circuit breaker.
//
// The breaker keeps real time for its interval and timeout, so tests exercise
// the wrapped client rather than waiting on state transitions.
type Breaker struct {
	cb     *gobreaker.CircuitBreaker[[]byte]
	name   string
	logger zerolog.Logger
}

// NewBreaker creates a breaker that opens once at least 5 requests were seen
// in the last minute and 60% of them failed. isSuccessful decides which
// errors still count as a healthy upstream (e.g. "not found").
func NewBreaker(name string, isSuccessful func(err error) bool) *Breaker {
	b := &Breaker{
		name:   name,
		logger: logging.Component("circuit-breaker").With().Str("breaker", name).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	b.cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= 0.6 {
				b.logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
		IsSuccessful: isSuccessful,
	})

	return b
}

// Execute runs fn through the breaker. Rejections surface as
// gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
func (b *Breaker) Execute(fn func() ([]byte, error)) ([]byte, error) {
	body, err := b.cb.Execute(fn)

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case IsBreakerRejection(err):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		b.logger.Warn().Err(err).Msg("request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}

	return body, err
}

// State returns the current breaker state name
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// IsBreakerRejection reports whether err came from an open breaker rather
// than from the upstream itself
func IsBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
