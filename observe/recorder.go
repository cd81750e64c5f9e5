package observe

// Event is one recorded PhaseStarted/PhaseEnded call, captured by
// Recorder for tests and demos that want to inspect the instrumentation
// stream without wiring a real metrics sink.
type Event struct {
	Phase      string
	Started    bool // true for PhaseStarted, false for PhaseEnded
	DurationNS int64
	Err        error
}

// Recorder is an Observer that appends every event to Events, in order.
// It is safe for the single-threaded, synchronous use the core
// guarantees: no core operation runs concurrently with itself.
type Recorder struct {
	Events []Event
}

// PhaseStarted implements Observer.
func (r *Recorder) PhaseStarted(name string) {
	r.Events = append(r.Events, Event{Phase: name, Started: true})
}

// PhaseEnded implements Observer.
func (r *Recorder) PhaseEnded(name string, durationNS int64, err error) {
	r.Events = append(r.Events, Event{Phase: name, DurationNS: durationNS, Err: err})
}
