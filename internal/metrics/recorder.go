package metrics

import "time"

// ResultLabel enumerates task result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for tasks, the aggregator and the Sass
// compiler. Implementations must be safe for concurrent use; parallel tasks
// record at the same time.
type Recorder interface {
	ObserveTaskDuration(task string, d time.Duration)
	IncTaskResult(task string, result ResultLabel)
	IncRecord(kind string)
	ObserveParseDuration(d time.Duration)
	SetDocuments(n int)
	ObserveCompileDuration(d time.Duration, success bool)
	IncRebuild()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveTaskDuration(string, time.Duration)  {}
func (NoopRecorder) IncTaskResult(string, ResultLabel)          {}
func (NoopRecorder) IncRecord(string)                           {}
func (NoopRecorder) ObserveParseDuration(time.Duration)         {}
func (NoopRecorder) SetDocuments(int)                           {}
func (NoopRecorder) ObserveCompileDuration(time.Duration, bool) {}
func (NoopRecorder) IncRebuild()                                {}

// OrNoop returns r, or NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
