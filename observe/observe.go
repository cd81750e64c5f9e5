// Package observe defines an optional, injected instrumentation seam
// for the stripifier.
//
// The core packages (radixsort, adjacency, strip, mesh) never log and
// never measure their own timing (spec: "the core does not log"); they
// only ever fire structured events through an Observer. Calling any
// core operation with NoOp must produce results identical to calling
// it with a recording Observer attached — instrumentation is purely a
// side channel, never part of the result.
package observe

import "time"

// Observer receives structured lifecycle events for named phases of
// work (e.g. "adjacency.sort", "adjacency.scan", "strip.walk").
//
// PhaseStarted is called immediately before a phase begins.
// PhaseEnded is called immediately after it completes, with the
// elapsed duration in nanoseconds and, if the phase failed, the error
// that ended it (nil on success).
type Observer interface {
	PhaseStarted(name string)
	PhaseEnded(name string, durationNS int64, err error)
}

// NoOp is the zero-cost default Observer. It is used whenever a caller
// supplies no Observer of its own.
var NoOp Observer = noOpObserver{}

type noOpObserver struct{}

func (noOpObserver) PhaseStarted(string)             {}
func (noOpObserver) PhaseEnded(string, int64, error) {}

// orBackground returns o if non-nil, else NoOp.
func orBackground(o Observer) Observer {
	if o == nil {
		return NoOp
	}
	return o
}

// Phase runs fn under PhaseStarted/PhaseEnded bookkeeping for name,
// using obs (or NoOp if obs is nil). It returns fn's error unchanged.
//
// Every core phase boundary (sort pass, adjacency scan, strip walk)
// goes through Phase so instrumentation is applied uniformly and can
// never be forgotten at a call site.
func Phase(obs Observer, name string, fn func() error) error {
	o := orBackground(obs)
	o.PhaseStarted(name)
	start := time.Now()
	err := fn()
	o.PhaseEnded(name, time.Since(start).Nanoseconds(), err)
	return err
}
