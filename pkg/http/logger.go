package http

import "time"

// HTTPLogger receives the lifecycle of each outbound call. A nil logger
// disables every hook; implementations must be safe for concurrent use.
type HTTPLogger interface {
	// LogRequest is called just before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after a response with a success status
	LogResponseSuccess(method, url string, statusCode int, latency time.Duration)

	// LogResponseError is called after a transport failure or an error status
	LogResponseError(method, url string, statusCode int, latency time.Duration, err error)

	// LogRequestRetry is called when backoff is configured and a retry attempt
	// is about to be made, with the outcome that caused it
	LogRequestRetry(method, url string, attempt, maxRetries int, delay time.Duration, err error)
}
