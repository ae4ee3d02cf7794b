package http

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// BackoffConfig represents retry options for a request
type BackoffConfig struct {
	// MaxRetries is the number of additional attempts after the first failure
	MaxRetries int
	// InitialDelay is the delay before the first retry
	InitialDelay time.Duration
	// MaxDelay caps the delay between retries
	MaxDelay time.Duration
	// Multiplier grows the delay after each retry
	Multiplier float64
}

// NewBackoffConfig creates a new backoff configuration with default values
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
}

// WithMaxRetries sets the number of additional attempts after the first failure
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	if maxRetries < 0 {
		panic(fmt.Sprintf("invalid max retries: %d, must be non-negative", maxRetries))
	}
	b.MaxRetries = maxRetries
	return b
}

// WithInitialDelay sets the delay before the first retry
func (b *BackoffConfig) WithInitialDelay(delay time.Duration) *BackoffConfig {
	if delay < 0 {
		panic(fmt.Sprintf("invalid initial delay: %v, must be non-negative", delay))
	}
	b.InitialDelay = delay
	return b
}

// WithMaxDelay caps the delay between retries
func (b *BackoffConfig) WithMaxDelay(delay time.Duration) *BackoffConfig {
	if delay < 0 {
		panic(fmt.Sprintf("invalid max delay: %v, must be non-negative", delay))
	}
	b.MaxDelay = delay
	return b
}

// WithMultiplier sets the growth factor applied to the delay after each retry
func (b *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	if multiplier < 1 {
		panic(fmt.Sprintf("invalid multiplier: %v, must be at least 1", multiplier))
	}
	b.Multiplier = multiplier
	return b
}

// doRequestWithBackoff sends the request, retrying transport errors and
// server-side failures according to the backoff configuration. A nil
// configuration sends the request exactly once.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		return hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	delay := backoff.InitialDelay
	var (
		success    any
		errorBody  any
		statusCode int
		err        error
	)
	for attempt := 0; attempt <= backoff.MaxRetries; attempt++ {
		if attempt > 0 {
			if hc.logger != nil {
				hc.logger.LogRequestRetry(method, hc.buildURL(path), attempt, backoff.MaxRetries, delay, err)
			}
			select {
			case <-ctx.Done():
				return nil, nil, statusCode, ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * backoff.Multiplier)
			if backoff.MaxDelay > 0 && delay > backoff.MaxDelay {
				delay = backoff.MaxDelay
			}
		}

		success, errorBody, statusCode, err = hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil || !retryable(statusCode) {
			return success, errorBody, statusCode, err
		}
	}
	return success, errorBody, statusCode, err
}

// retryable reports whether the attempt may be repeated. Transport errors
// carry no status code and server-side failures are transient by assumption.
func retryable(statusCode int) bool {
	return statusCode == 0 || statusCode >= http.StatusInternalServerError
}
