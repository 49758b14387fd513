package metrics

import (
	"sync"
	"time"
)

// testRecorder counts calls; it is shared by tests in this package.
type testRecorder struct {
	mu            sync.Mutex
	taskDurations map[string]int
	taskResults   map[string]map[ResultLabel]int
	records       map[string]int
	documents     int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		taskDurations: map[string]int{},
		taskResults:   map[string]map[ResultLabel]int{},
		records:       map[string]int{},
	}
}

func (t *testRecorder) ObserveTaskDuration(task string, _ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.taskDurations[task]++
}

func (t *testRecorder) IncTaskResult(task string, result ResultLabel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.taskResults[task]
	if !ok {
		m = map[ResultLabel]int{}
		t.taskResults[task] = m
	}
	m[result]++
}

func (t *testRecorder) IncRecord(kind string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records[kind]++
}

func (t *testRecorder) ObserveParseDuration(time.Duration) {}
func (t *testRecorder) SetDocuments(n int)                 { t.documents = n }
func (t *testRecorder) ObserveCompileDuration(time.Duration, bool) {}
func (t *testRecorder) IncRebuild()                        {}

var _ Recorder = (*testRecorder)(nil)
var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)
