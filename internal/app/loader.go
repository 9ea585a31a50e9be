package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ukm/parcel/internal/orders"
)

const (
	defaultFetchTimeout = 3 * time.Second
	fetchAttempts       = 3
	baseBackoff         = 200 * time.Millisecond
	maxBackoff          = 2 * time.Second
)

// LoadOrders fetches the initial orders, retrying transient failures with
// exponential backoff. Each attempt gets its own timeout.
func LoadOrders(ctx context.Context, src orders.Source, timeout time.Duration) ([]orders.Order, error) {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	var lastErr error
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			wait := calculateBackoff(attempt - 1)
			log.Printf("order fetch failed (attempt %d): %v; retrying in %v", attempt, lastErr, wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
		list, err := fetchOnce(ctx, src, timeout)
		if err == nil {
			return list, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d attempts: %w", fetchAttempts, lastErr)
}

func fetchOnce(ctx context.Context, src orders.Source, timeout time.Duration) ([]orders.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return src.FetchOrders(ctx)
}

func calculateBackoff(failures int) time.Duration {
	if failures < 0 {
		failures = 0
	}
	d := baseBackoff
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
