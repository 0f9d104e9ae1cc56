package http

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fwojciec/tldr"
	"golang.org/x/time/rate"
)

// DefaultRetryDelay is the wait before the first retry. Each further retry
// waits twice as long as the previous one.
const DefaultRetryDelay = time.Second

// DefaultRetries is the number of retries after the first attempt.
const DefaultRetries = 3

var _ tldr.ArchiveFetcher = (*RetryFetcher)(nil)

// RetryFetcher repeats failed downloads with exponential backoff. An attempt
// is only repeated when it wrote nothing to the destination, so callers never
// see a partial body followed by a complete one.
type RetryFetcher struct {
	fetcher tldr.ArchiveFetcher

	Retries int
	Delay   time.Duration

	// OnRetry, if set, is called before each retry.
	OnRetry func(url string, attempt int, err error)
}

// NewRetryFetcher wraps fetcher with the default retry policy.
func NewRetryFetcher(fetcher tldr.ArchiveFetcher) *RetryFetcher {
	return &RetryFetcher{
		fetcher: fetcher,
		Retries: DefaultRetries,
		Delay:   DefaultRetryDelay,
	}
}

// Fetch implements tldr.ArchiveFetcher.
func (f *RetryFetcher) Fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	delay := f.Delay
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	var lastErr error
	for attempt := 0; attempt <= f.Retries; attempt++ {
		if attempt > 0 {
			if f.OnRetry != nil {
				f.OnRetry(url, attempt+1, lastErr)
			}
			if err := limiter.Wait(ctx); err != nil {
				return 0, err
			}
			delay *= 2
			limiter.SetLimit(rate.Every(delay))
		} else {
			// The first attempt consumes the initial token so the next
			// Wait blocks for one full delay.
			limiter.Allow()
		}

		cw := &countingWriter{w: w}
		n, err := f.fetcher.Fetch(ctx, url, cw)
		if err == nil {
			return n, nil
		}
		lastErr = err

		if cw.n > 0 || !retryable(err) || ctx.Err() != nil {
			return n, err
		}
	}
	return 0, lastErr
}

// retryable reports whether err may go away on another attempt. Status
// errors are retried only for 429 and 5xx responses.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
