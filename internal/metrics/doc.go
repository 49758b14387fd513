// Package metrics provides the observability hooks for stylebuilder tasks.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics can be left unconfigured without nil checks:
//
//	t := aggregate.New(kss.Parser{}, os.Stdout, aggregate.WithRecorder(rec))
//
// PrometheusRecorder registers its collectors on a caller-provided registry.
// A CLI run is short-lived, so instead of serving /metrics the registry is
// dumped once at exit with WriteTextfile (node_exporter textfile collector
// format).
package metrics
