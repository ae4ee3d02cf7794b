package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go-monitor/internal/domain/model"

	httpclient "go-monitor/pkg/http"
)

// ProbeGateway checks external API reachability for health monitoring.
type ProbeGateway interface {
	// Probe verifies the external service answers its status endpoint
	Probe(ctx context.Context) (model.ProbeFinding, error)
}

// CallRecorder receives the outcome of each outbound call issued by the
// probe.
type CallRecorder interface {
	RecordExternalAPICall(service string, duration time.Duration, err error)
}

// HTTPProbeGateway probes an external API by requesting its status path. An
// answer of 503 degrades the dependency without counting as a failed
// attempt; any other non-success answer or a transport error does.
type HTTPProbeGateway struct {
	service    string
	statusPath string
	httpClient *httpclient.Client
	recorder   CallRecorder
}

var _ ProbeGateway = (*HTTPProbeGateway)(nil)

// NewHTTPProbeGateway creates a new HTTP probe gateway for the named
// service. The recorder may be nil.
func NewHTTPProbeGateway(service, baseURL, statusPath string, options httpclient.ClientOptions, recorder CallRecorder) *HTTPProbeGateway {
	return &HTTPProbeGateway{
		service:    service,
		statusPath: statusPath,
		httpClient: httpclient.NewHttpClient(baseURL, options),
		recorder:   recorder,
	}
}

func (gateway *HTTPProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	start := time.Now()
	_, _, statusCode, err := gateway.httpClient.Request().
		WithContext(ctx).
		WithMethod(httpclient.GET).
		WithPath(gateway.statusPath).
		Execute()
	took := time.Since(start)

	if gateway.recorder != nil {
		gateway.recorder.RecordExternalAPICall(gateway.service, took, err)
	}

	details := map[string]string{
		"service":     gateway.service,
		"status_code": strconv.Itoa(statusCode),
	}

	if err != nil {
		if statusCode == http.StatusServiceUnavailable {
			return model.ProbeFinding{
				Status:  model.StatusDegraded,
				Message: "service reports temporarily unavailable",
				Details: details,
			}, nil
		}
		return model.ProbeFinding{}, err
	}

	return model.ProbeFinding{
		Status:  model.StatusHealthy,
		Details: details,
	}, nil
}
