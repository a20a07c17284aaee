package tick

import (
	"sync/atomic"
	"time"
)

// Metrics counts scheduler activity. Safe for concurrent use.
type Metrics struct {
	Frames          int64 // Frame invocations
	TicksIssued     int64 // input requests sent
	TicksApplied    int64 // responses written to the store
	TicksFailed     int64 // requests that returned an error for a live session
	SkippedInFlight int64 // intervals that elapsed while a tick was outstanding
	StaleDiscarded  int64 // results for a session that is no longer running
	ResultsDropped  int64 // results lost because the result queue was full
	TotalRoundTrip  int64 // accumulated request round trip in nanoseconds
	RoundTrips      int64
}

func (m *Metrics) incFrames()          { atomic.AddInt64(&m.Frames, 1) }
func (m *Metrics) incIssued()          { atomic.AddInt64(&m.TicksIssued, 1) }
func (m *Metrics) incApplied()         { atomic.AddInt64(&m.TicksApplied, 1) }
func (m *Metrics) incFailed()          { atomic.AddInt64(&m.TicksFailed, 1) }
func (m *Metrics) incSkippedInFlight() { atomic.AddInt64(&m.SkippedInFlight, 1) }
func (m *Metrics) incStaleDiscarded()  { atomic.AddInt64(&m.StaleDiscarded, 1) }
func (m *Metrics) incResultsDropped()  { atomic.AddInt64(&m.ResultsDropped, 1) }
func (m *Metrics) addRoundTrip(d time.Duration) {
	atomic.AddInt64(&m.RoundTrips, 1)
	atomic.AddInt64(&m.TotalRoundTrip, int64(d))
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames          int64
	TicksIssued     int64
	TicksApplied    int64
	TicksFailed     int64
	SkippedInFlight int64
	StaleDiscarded  int64
	ResultsDropped  int64
	AvgRoundTrip    time.Duration
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	count := atomic.LoadInt64(&m.RoundTrips)
	total := atomic.LoadInt64(&m.TotalRoundTrip)
	var avg time.Duration
	if count > 0 {
		avg = time.Duration(total / count)
	}
	return MetricsSnapshot{
		Frames:          atomic.LoadInt64(&m.Frames),
		TicksIssued:     atomic.LoadInt64(&m.TicksIssued),
		TicksApplied:    atomic.LoadInt64(&m.TicksApplied),
		TicksFailed:     atomic.LoadInt64(&m.TicksFailed),
		SkippedInFlight: atomic.LoadInt64(&m.SkippedInFlight),
		StaleDiscarded:  atomic.LoadInt64(&m.StaleDiscarded),
		ResultsDropped:  atomic.LoadInt64(&m.ResultsDropped),
		AvgRoundTrip:    avg,
	}
}
