package self

import (
	"context"
	"fmt"
	"strconv"

	"go-monitor/internal/domain/model"
)

// ProbeGateway checks the health of the process itself.
type ProbeGateway interface {
	// Probe judges the process from its own runtime metrics
	Probe(ctx context.Context) (model.ProbeFinding, error)
}

// MetricsSource provides the current metrics view the self assessment reads.
type MetricsSource interface {
	SystemMetrics() model.SystemMetrics
	HTTPOverview() model.PerformanceExcerpt
}

// SelfProbeGateway judges the process from its heap pressure and request
// error rate. Being able to run the probe at all already proves basic
// responsiveness; the thresholds catch a process that responds but is in
// trouble.
type SelfProbeGateway struct {
	source           MetricsSource
	heapLimitPercent float64
	errorRateLimit   float64
}

var _ ProbeGateway = (*SelfProbeGateway)(nil)

// NewSelfProbeGateway creates a new self probe gateway. Heap usage above
// heapLimitPercent or a request error rate above errorRateLimit degrade the
// process.
func NewSelfProbeGateway(source MetricsSource, heapLimitPercent, errorRateLimit float64) *SelfProbeGateway {
	return &SelfProbeGateway{
		source:           source,
		heapLimitPercent: heapLimitPercent,
		errorRateLimit:   errorRateLimit,
	}
}

func (gateway *SelfProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	if err := ctx.Err(); err != nil {
		return model.ProbeFinding{}, err
	}

	system := gateway.source.SystemMetrics()
	overview := gateway.source.HTTPOverview()

	var heapPercent float64
	if system.Memory.HeapTotal > 0 {
		heapPercent = float64(system.Memory.HeapUsed) / float64(system.Memory.HeapTotal) * 100
	}

	finding := model.ProbeFinding{
		Status: model.StatusHealthy,
		Details: map[string]string{
			"heap_percent": fmt.Sprintf("%.1f", heapPercent),
			"error_rate":   fmt.Sprintf("%.4f", overview.ErrorRate),
			"goroutines":   strconv.Itoa(system.CPU.Goroutines),
		},
	}

	switch {
	case gateway.heapLimitPercent > 0 && heapPercent > gateway.heapLimitPercent:
		finding.Status = model.StatusDegraded
		finding.Message = fmt.Sprintf("heap usage %.1f%% exceeds %.1f%% limit", heapPercent, gateway.heapLimitPercent)
	case gateway.errorRateLimit > 0 && overview.ErrorRate > gateway.errorRateLimit:
		finding.Status = model.StatusDegraded
		finding.Message = fmt.Sprintf("request error rate %.4f exceeds %.4f limit", overview.ErrorRate, gateway.errorRateLimit)
	}
	return finding, nil
}
