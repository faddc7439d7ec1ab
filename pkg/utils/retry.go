package utils

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// MaxElapsed caps the total time spent retrying; zero means no cap.
	MaxElapsed time.Duration
}

// Retry runs fn with exponential backoff until it succeeds, the attempts or
// elapsed budget run out, or ctx is done. Errors matching any of permanent
// are returned immediately.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error, permanent ...error) error {
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = cfg.InitialDelay
	eb.Multiplier = cfg.Multiplier
	eb.MaxElapsedTime = cfg.MaxElapsed
	if cfg.MaxDelay > 0 {
		eb.MaxInterval = cfg.MaxDelay
	}

	var b backoff.BackOff = eb
	if cfg.MaxAttempts > 0 {
		b = backoff.WithMaxRetries(b, uint64(cfg.MaxAttempts-1))
	}

	op := func() error {
		err := fn()
		for _, p := range permanent {
			if errors.Is(err, p) {
				return backoff.Permanent(err)
			}
		}
		return err
	}

	return backoff.Retry(op, backoff.WithContext(b, ctx))
}
