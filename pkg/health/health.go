package health

import (
	"context"
	"time"
)

// Result is the outcome of a single probe
type Result struct {
	Healthy   bool
	Status    string
	Message   string
	CheckedAt time.Time
	Duration  time.Duration
}

// Checker probes one endpoint of a cookshow server
type Checker interface {
	Check(ctx context.Context) Result
	Name() string
}

// Config controls how Wait polls a checker
type Config struct {
	// Interval is the time between probes
	Interval time.Duration

	// Timeout bounds a single probe
	Timeout time.Duration

	// Retries is the number of consecutive failures before giving up.
	// Zero keeps polling until the context is done.
	Retries int
}

// DefaultConfig returns the polling settings used by `cookshow status --wait`
func DefaultConfig() Config {
	return Config{
		Interval: 2 * time.Second,
		Timeout:  5 * time.Second,
		Retries:  0,
	}
}

// Status tracks consecutive probe outcomes
type Status struct {
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	LastResult           Result
	Healthy              bool
}

// Update records a probe result
func (s *Status) Update(result Result) {
	s.LastResult = result
	if result.Healthy {
		s.ConsecutiveSuccesses++
		s.ConsecutiveFailures = 0
		s.Healthy = true
		return
	}
	s.ConsecutiveFailures++
	s.ConsecutiveSuccesses = 0
	s.Healthy = false
}

// Exhausted reports whether the retry budget of cfg is spent
func (s *Status) Exhausted(cfg Config) bool {
	return cfg.Retries > 0 && s.ConsecutiveFailures >= cfg.Retries
}

// Wait probes checker every cfg.Interval until it reports healthy, the retry
// budget is spent, or ctx is done. It returns the final status.
func Wait(ctx context.Context, checker Checker, cfg Config) (*Status, error) {
	status := &Status{}
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		probeCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		status.Update(checker.Check(probeCtx))
		cancel()

		if status.Healthy || status.Exhausted(cfg) {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
