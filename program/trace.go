package main

import (
	"math"
	"time"

	plot "github.com/chriskim06/drawille-go"
)

// Sample is one timestamped scalar reading from an upstream vitals
// stream. Time is in seconds on the stream's own clock and must be
// strictly increasing within a trace.
type Sample struct {
	Time  float64
	Value float64
}

// TraceBuffer accumulates the samples of one vital sign over a
// recording session. Upstream delivery order is not guaranteed, so
// Append silently drops anything that would break the strictly
// increasing timestamp order. It never returns an error: re-delivered
// or late samples are expected, not exceptional.
//
// A buffer has exactly one producer. Callers serialize access
// externally (the model holds a mutex around Append/Snapshot), so the
// buffer itself carries no lock.
type TraceBuffer struct {
	samples   []Sample
	lastTime  float64
	nonEmpty  bool
	observers map[int]func([]Sample)
	nextObsID int
}

func NewTraceBuffer() *TraceBuffer {
	return &TraceBuffer{}
}

// Append stores the sample if its timestamp is strictly greater than
// the last stored one, and reports whether it was accepted. On
// acceptance every subscribed observer gets the updated series.
func (b *TraceBuffer) Append(s Sample) bool {
	if !isFinite(s.Time) {
		return false
	}
	if b.nonEmpty && s.Time <= b.lastTime {
		return false
	}
	b.samples = append(b.samples, s)
	b.lastTime = s.Time
	b.nonEmpty = true
	for _, fn := range b.observers {
		fn(b.samples)
	}
	return true
}

// Reset clears the trace for a new recording session.
func (b *TraceBuffer) Reset() {
	b.samples = nil
	b.lastTime = 0
	b.nonEmpty = false
}

// Snapshot returns the current series. The returned slice is a view,
// not a copy: callers must treat it as frozen for the current tick and
// must not mutate or retain it across ticks.
func (b *TraceBuffer) Snapshot() []Sample {
	return b.samples
}

func (b *TraceBuffer) Len() int {
	return len(b.samples)
}

// Subscribe registers an observer called after each accepted append
// with the updated series, and returns a cancel func. Observers run
// synchronously in the producer's context; the same snapshot contract
// as Snapshot applies.
func (b *TraceBuffer) Subscribe(fn func([]Sample)) (cancel func()) {
	if b.observers == nil {
		b.observers = make(map[int]func([]Sample))
	}
	id := b.nextObsID
	b.nextObsID++
	b.observers[id] = fn
	return func() { delete(b.observers, id) }
}

// Point is a polyline vertex in drawing-area coordinates: x in
// [0, width-1] left to right, y in [0, height] with 0 at the top.
type Point struct {
	X float64
	Y float64
}

// ScrollingTraceRenderer turns per-tick snapshots of a TraceBuffer into
// a scrolling polyline. It runs at the plot refresh rate, decoupled
// from sample arrival: between real arrivals it extrapolates a
// synthetic tail point that holds the last value flat, so the line
// keeps moving instead of freezing.
//
// Frame takes the tick instant explicitly, so tests can drive it with
// synthetic clocks. It never fails; every degenerate input degrades to
// "no polyline this tick".
type ScrollingTraceRenderer struct {
	WindowSeconds float64

	// Pass-through metadata for the drawing surface.
	Label string
	Color plot.Color

	// Wall-clock instant last seen to coincide with the newest real
	// sample. Synthetic tail time is measured from here.
	anchor       time.Time
	anchorSet    bool
	lastSeenTime float64
}

// Frame computes the polyline for one tick. The samples slice is the
// buffer snapshot for this tick. ok is false when there is nothing
// drawable (empty buffer, or fewer than two points in the window); the
// surface shows its placeholder instead.
func (r *ScrollingTraceRenderer) Frame(now time.Time, samples []Sample, width, height int) (points []Point, ok bool) {
	if len(samples) == 0 || width < 2 || height < 1 || r.WindowSeconds <= 0 {
		return nil, false
	}

	last := samples[len(samples)-1]
	if !r.anchorSet || last.Time != r.lastSeenTime {
		// A real sample landed since the previous tick: extrapolation
		// restarts from zero elapsed time.
		r.anchor = now
		r.anchorSet = true
		r.lastSeenTime = last.Time
	}

	elapsed := now.Sub(r.anchor).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	latest := last
	tail := false
	if elapsed > 0 {
		// Synthetic tail: hold the last known value flat. Exists only
		// for this tick, never enters the buffer.
		latest = Sample{Time: last.Time + elapsed, Value: last.Value}
		tail = true
	}

	windowStart := latest.Time - r.WindowSeconds
	first := 0
	for first < len(samples) && samples[first].Time < windowStart {
		first++
	}
	window := samples[first:]
	n := len(window)
	if tail {
		n++
	}
	if n < 2 {
		return nil, false
	}

	lo, hi, anyFinite := finiteRange(window, latest, tail)
	if !anyFinite {
		return nil, false
	}
	span := hi - lo

	points = make([]Point, 0, n)
	for i := 0; i < n; i++ {
		s := latest
		if i < len(window) {
			s = window[i]
		}
		if !isFinite(s.Value) {
			continue
		}
		xNorm := (s.Time - windowStart) / r.WindowSeconds
		if xNorm < 0 {
			xNorm = 0
		} else if xNorm > 1 {
			xNorm = 1
		}
		// An all-equal window still draws: flat line at mid-height.
		yNorm := 0.5
		if span > 0 {
			yNorm = (s.Value - lo) / span
		}
		x := xNorm * float64(width-1)
		y := float64(height) - yNorm*float64(height)
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	if len(points) < 2 {
		return nil, false
	}
	return points, true
}

// Reset forgets the tail anchor. Called when the owning session
// restarts, alongside TraceBuffer.Reset.
func (r *ScrollingTraceRenderer) Reset() {
	r.anchor = time.Time{}
	r.anchorSet = false
	r.lastSeenTime = 0
}

// finiteRange computes min/max over the finite values of the window
// (plus the synthetic tail, if any). Non-finite values are left out so
// a single NaN upstream cannot poison normalization for the whole
// window; the offending points get dropped during projection instead.
func finiteRange(window []Sample, tail Sample, hasTail bool) (lo, hi float64, any bool) {
	consider := func(v float64) {
		if !isFinite(v) {
			return
		}
		if !any {
			lo, hi = v, v
			any = true
			return
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, s := range window {
		consider(s.Value)
	}
	if hasTail {
		consider(tail.Value)
	}
	return lo, hi, any
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
