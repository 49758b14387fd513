package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "stylebuilder"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	taskDuration    *prom.HistogramVec
	taskResults     *prom.CounterVec
	records         *prom.CounterVec
	parseDuration   prom.Histogram
	documents       prom.Gauge
	compileDuration *prom.HistogramVec
	rebuilds        prom.Counter
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		taskDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Duration of individual build tasks",
			Buckets:   prom.DefBuckets,
		}, []string{"task"}),
		taskResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "task_results_total",
			Help:      "Task result counts by outcome",
		}, []string{"task", "result"}),
		records: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "styleguide_records_total",
			Help:      "Records handed to the style-guide aggregator by kind",
		}, []string{"kind"}),
		parseDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "styleguide_parse_duration_seconds",
			Help:      "Time spent parsing one buffered record",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		}),
		documents: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "styleguide_documents",
			Help:      "Documents accumulated by the last finished aggregation run",
		}),
		compileDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "sass_compile_duration_seconds",
			Help:      "Duration of Sass compilations",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		rebuilds: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "watch_rebuilds_total",
			Help:      "Rebuilds triggered by the file watcher",
		}),
	}
	reg.MustRegister(pr.taskDuration, pr.taskResults, pr.records, pr.parseDuration, pr.documents, pr.compileDuration, pr.rebuilds)
	return pr
}

func (p *PrometheusRecorder) ObserveTaskDuration(task string, d time.Duration) {
	if p == nil {
		return
	}
	p.taskDuration.WithLabelValues(task).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncTaskResult(task string, result ResultLabel) {
	if p == nil {
		return
	}
	p.taskResults.WithLabelValues(task, string(result)).Inc()
}

func (p *PrometheusRecorder) IncRecord(kind string) {
	if p == nil {
		return
	}
	p.records.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) ObserveParseDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.parseDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetDocuments(n int) {
	if p == nil {
		return
	}
	p.documents.Set(float64(n))
}

func (p *PrometheusRecorder) ObserveCompileDuration(d time.Duration, success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.compileDuration.WithLabelValues(res).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRebuild() {
	if p == nil {
		return
	}
	p.rebuilds.Inc()
}
