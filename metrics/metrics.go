package metrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/model"
)

// Follow Prometheus naming practices
// https://prometheus.io/docs/practices/naming/
var (
	callLabels = []string{"implementation", "status"}
)

var (
	MetricCallLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hexload_call_latency_seconds",
			Help:    "hex conversion call latency including the simulated delay (seconds).",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 7.5, 10, 15, 30},
		},
		callLabels,
	)

	MetricEncodedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hexload_encoded_bytes_total",
			Help: "input bytes successfully converted to hex.",
		},
		[]string{"implementation"},
	)
)

type MetricsServer struct {
	*http.Server

	latencyHistogram *prometheus.HistogramVec
	encodedBytes     *prometheus.CounterVec
}

const (
	// MetricsPath is the endpoint to collect load test metrics
	MetricsPath = "/metrics"
)

type ServerConfig struct {
	Addr string
}

// NewMetricsServer returns a new prometheus server which collects load test metrics
func NewMetricsServer(cfg ServerConfig) *MetricsServer {
	mux := http.NewServeMux()

	reg := prometheus.NewRegistry()

	reg.MustRegister(MetricCallLatency, MetricEncodedBytes)

	mux.Handle(MetricsPath, promhttp.HandlerFor(prometheus.Gatherers{
		reg,
	}, promhttp.HandlerOpts{}))
	return &MetricsServer{
		Server: &http.Server{
			Addr:    cfg.Addr,
			Handler: mux,
		},
		latencyHistogram: MetricCallLatency,
		encodedBytes:     MetricEncodedBytes,
	}
}

// IncLatencyHistogram add an observed measurment of call latency
func (m *MetricsServer) IncLatencyHistogram(duration time.Duration, lvs ...string) {
	m.latencyHistogram.WithLabelValues(lvs...).Observe(duration.Seconds())
}

func (m *MetricsServer) AddEncodedBytes(implementation string, n int) {
	m.encodedBytes.WithLabelValues(implementation).Add(float64(n))
}

var reportPercentiles = []struct {
	label    string
	quantile string
}{
	{label: "p50", quantile: "0.5"},
	{label: "p90", quantile: "0.9"},
}

// LoadReport queries the Prometheus server at addr for latency percentiles of
// every implementation that ran during the last duration.
func LoadReport(w io.Writer, addr string, duration time.Duration, implementations ...string) error {
	client, err := api.NewClient(api.Config{
		Address: addr,
	})
	if err != nil {
		return fmt.Errorf("error creating prometheus client: %w", err)
	}

	v1api := v1.NewAPI(client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	interval := duration.Round(time.Second).String()
	getPercentile := func(implementation, label, percentile string) error {
		queryLatencyPercentile := `histogram_quantile(%s, sum(rate(hexload_call_latency_seconds_bucket{implementation=%q}[%s])) by (le))`

		query := fmt.Sprintf(queryLatencyPercentile, percentile, implementation, interval)
		result, warnings, err := v1api.Query(ctx, query, time.Now())
		if err != nil {
			return fmt.Errorf("error querying prometheus: %w", err)
		}
		if len(warnings) > 0 {
			fmt.Fprintf(w, "Warnings: %v\n", warnings)
		}

		vec, ok := result.(model.Vector)
		if !ok {
			return fmt.Errorf("unsupported result format: %s", result.Type().String())
		}
		if vec.Len() == 0 {
			fmt.Fprintf(w, "[%s] Not enough samples\n", implementation)
			return nil
		}
		fmt.Fprintf(w, "[%s] %s latency (seconds): %0.3f\n", implementation, label, vec[0].Value)
		return nil
	}

	for _, implementation := range implementations {
		for _, p := range reportPercentiles {
			if err := getPercentile(implementation, p.label, p.quantile); err != nil {
				return err
			}
		}
	}

	return nil
}
