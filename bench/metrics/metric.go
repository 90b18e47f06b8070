package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bst_bench"

// Metrics holds the collectors of one benchmark run. Each run gets its own
// registry so that runs in the same process do not collide.
type Metrics struct {
	Registry *prometheus.Registry

	OpSeconds  *prometheus.HistogramVec
	Trials     *prometheus.CounterVec
	LeafCount  prometheus.Counter
	TreeSize   prometheus.Gauge
	TreeHeight prometheus.Gauge
}

func NewMetrics(impl string) *Metrics {
	labels := prometheus.Labels{"impl": impl}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		OpSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "op_seconds",
			Help:        "Duration of one timed tree operation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 14),
		}, []string{"op", "order"}),
		Trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "trials_total",
			Help:        "Completed trials.",
			ConstLabels: labels,
		}, []string{"op", "order"}),
		LeafCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "leaves_total",
			Help:        "Entries inserted while building trial trees.",
			ConstLabels: labels,
		}),
		TreeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "tree_size",
			Help:        "Size of the tree left by the last trial.",
			ConstLabels: labels,
		}),
		TreeHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "tree_height",
			Help:        "Height of the tree left by the last trial.",
			ConstLabels: labels,
		}),
	}
	m.Registry.MustRegister(m.OpSeconds, m.Trials, m.LeafCount, m.TreeSize, m.TreeHeight)
	return m
}

// ObserveTrial records one trial of op over a tree of n entries.
func (m *Metrics) ObserveTrial(op, order string, d time.Duration, n int) {
	m.OpSeconds.WithLabelValues(op, order).Observe(d.Seconds())
	m.Trials.WithLabelValues(op, order).Inc()
	m.LeafCount.Add(float64(n))
}

func (m *Metrics) SetTree(size, height int) {
	m.TreeSize.Set(float64(size))
	m.TreeHeight.Set(float64(height))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Run serves /metrics on addr until ctx is done.
func (m *Metrics) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Print renders counters and gauges one per line, histograms as count and sum.
func (m *Metrics) Print() (string, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return "", err
	}
	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "impl" {
					continue
				}
				labels = append(labels, fmt.Sprintf("%s=%s", lp.GetName(), lp.GetValue()))
			}
			path := mf.GetName()
			if len(labels) > 0 {
				path += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case metric.Counter != nil:
				lines = append(lines, fmt.Sprintf("%s %s", path, humanize.Comma(int64(metric.Counter.GetValue()))))
			case metric.Gauge != nil:
				lines = append(lines, fmt.Sprintf("%s %s", path, humanize.Comma(int64(metric.Gauge.GetValue()))))
			case metric.Histogram != nil:
				lines = append(lines, fmt.Sprintf("%s count=%s sum=%.6fs", path,
					humanize.Comma(int64(metric.Histogram.GetSampleCount())), metric.Histogram.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n") + "\n", nil
}
