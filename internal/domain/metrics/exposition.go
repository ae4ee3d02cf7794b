package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// durationBuckets are the upper bounds, in seconds, of the request duration
// histogram. A +Inf bucket is always appended.
var durationBuckets = []float64{0.1, 0.5, 1, 5}

// RenderPrometheus renders the collected metrics in the Prometheus text
// exposition format. Request duration histograms are computed over the
// retained sample window of each endpoint.
func (c *Collector) RenderPrometheus() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder

	keys := make([]string, 0, len(c.endpoints))
	for key := range c.endpoints {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	writeHeader(&b, "http_requests_total", "Total number of handled HTTP requests.", "counter")
	fmt.Fprintf(&b, "http_requests_total %d\n", c.totalRequests)

	writeHeader(&b, "http_request_errors_total", "Total number of HTTP requests with status 400 or above.", "counter")
	fmt.Fprintf(&b, "http_request_errors_total %d\n", c.totalErrors)

	writeHeader(&b, "http_endpoint_requests_total", "Requests handled per endpoint.", "counter")
	for _, key := range keys {
		st := c.endpoints[key]
		fmt.Fprintf(&b, "http_endpoint_requests_total{method=%q,path=%q} %d\n",
			st.metrics.Method, st.metrics.Path, st.metrics.Count)
	}

	writeHeader(&b, "http_endpoint_errors_total", "Errors per endpoint.", "counter")
	for _, key := range keys {
		st := c.endpoints[key]
		fmt.Fprintf(&b, "http_endpoint_errors_total{method=%q,path=%q} %d\n",
			st.metrics.Method, st.metrics.Path, st.metrics.ErrorCount)
	}

	writeHeader(&b, "http_request_duration_seconds", "Request latency over the retained sample window.", "histogram")
	for _, key := range keys {
		st := c.endpoints[key]
		samples := st.window.Values()
		labels := fmt.Sprintf("method=%q,path=%q", st.metrics.Method, st.metrics.Path)

		var sum time.Duration
		for _, bound := range durationBuckets {
			count := 0
			for _, d := range samples {
				if d.Seconds() <= bound {
					count++
				}
			}
			fmt.Fprintf(&b, "http_request_duration_seconds_bucket{%s,le=%q} %d\n", labels, fmtFloat(bound), count)
		}
		for _, d := range samples {
			sum += d
		}
		fmt.Fprintf(&b, "http_request_duration_seconds_bucket{%s,le=\"+Inf\"} %d\n", labels, len(samples))
		fmt.Fprintf(&b, "http_request_duration_seconds_sum{%s} %s\n", labels, fmtFloat(sum.Seconds()))
		fmt.Fprintf(&b, "http_request_duration_seconds_count{%s} %d\n", labels, len(samples))
	}

	writeHeader(&b, "database_queries_total", "Total number of database queries.", "counter")
	fmt.Fprintf(&b, "database_queries_total %d\n", c.database.Count)

	writeHeader(&b, "database_query_errors_total", "Total number of failed database queries.", "counter")
	fmt.Fprintf(&b, "database_query_errors_total %d\n", c.database.ErrorCount)

	writeHeader(&b, "cache_operations_total", "Total number of cache operations.", "counter")
	fmt.Fprintf(&b, "cache_operations_total %d\n", c.cache.Operations)

	writeHeader(&b, "cache_hits_total", "Total number of cache lookup hits.", "counter")
	fmt.Fprintf(&b, "cache_hits_total %d\n", c.cache.Hits)

	writeHeader(&b, "cache_misses_total", "Total number of cache lookup misses.", "counter")
	fmt.Fprintf(&b, "cache_misses_total %d\n", c.cache.Misses)

	services := make([]string, 0, len(c.external))
	for service := range c.external {
		services = append(services, service)
	}
	sort.Strings(services)

	writeHeader(&b, "external_api_calls_total", "Outbound calls per external service.", "counter")
	for _, service := range services {
		fmt.Fprintf(&b, "external_api_calls_total{service=%q} %d\n", service, c.external[service].Calls)
	}

	writeHeader(&b, "external_api_errors_total", "Failed outbound calls per external service.", "counter")
	for _, service := range services {
		fmt.Fprintf(&b, "external_api_errors_total{service=%q} %d\n", service, c.external[service].ErrorCount)
	}

	writeHeader(&b, "process_memory_heap_used_bytes", "Heap bytes in active use.", "gauge")
	fmt.Fprintf(&b, "process_memory_heap_used_bytes %d\n", c.system.Memory.HeapUsed)

	writeHeader(&b, "process_memory_heap_total_bytes", "Heap bytes obtained from the operating system.", "gauge")
	fmt.Fprintf(&b, "process_memory_heap_total_bytes %d\n", c.system.Memory.HeapTotal)

	writeHeader(&b, "process_memory_stack_bytes", "Stack bytes in active use.", "gauge")
	fmt.Fprintf(&b, "process_memory_stack_bytes %d\n", c.system.Memory.Stack)

	writeHeader(&b, "system_memory_used_percent", "System memory usage percentage.", "gauge")
	fmt.Fprintf(&b, "system_memory_used_percent %s\n", fmtFloat(c.system.Memory.SystemUsedPercent))

	writeHeader(&b, "process_cpu_percent", "Process CPU usage percentage over the last sample interval.", "gauge")
	fmt.Fprintf(&b, "process_cpu_percent %s\n", fmtFloat(c.system.CPU.Percent))

	writeHeader(&b, "process_goroutines", "Number of live goroutines.", "gauge")
	fmt.Fprintf(&b, "process_goroutines %d\n", c.system.CPU.Goroutines)

	writeHeader(&b, "process_gc_collections_total", "Completed garbage collection cycles.", "counter")
	fmt.Fprintf(&b, "process_gc_collections_total %d\n", c.system.GC.Collections)

	writeHeader(&b, "process_gc_pause_seconds_total", "Cumulative garbage collection pause time.", "counter")
	fmt.Fprintf(&b, "process_gc_pause_seconds_total %s\n", fmtFloat(c.system.GC.TotalPause.Seconds()))

	writeHeader(&b, "scheduler_delay_seconds", "Most recent measured scheduler tick drift.", "gauge")
	fmt.Fprintf(&b, "scheduler_delay_seconds %s\n", fmtFloat(c.system.SchedulerDelay.Seconds()))

	writeHeader(&b, "process_uptime_seconds", "Elapsed time since the collector started.", "gauge")
	fmt.Fprintf(&b, "process_uptime_seconds %s\n", fmtFloat(time.Since(c.startTime).Seconds()))

	return b.String()
}

func writeHeader(b *strings.Builder, name, help, kind string) {
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s %s\n", name, kind)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
