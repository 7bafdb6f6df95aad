package main

import (
	"sync"
	"sync/atomic"
	"time"
)

type durationRing struct {
	mu    sync.Mutex
	buf   []time.Duration
	idx   int
	count int
}

func newDurationRing(n int) *durationRing {
	if n < 1 {
		n = 1
	}
	return &durationRing{buf: make([]time.Duration, n)}
}

func (r *durationRing) add(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.idx] = d
	r.idx++
	if r.idx >= len(r.buf) {
		r.idx = 0
	}
	if r.count < len(r.buf) {
		r.count++
	}
}

func (r *durationRing) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = 0
	r.count = 0
}

type durationStats struct {
	last time.Duration
	max  time.Duration
	avg  time.Duration
	n    int
}

func (r *durationRing) snapshot() durationStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return durationStats{}
	}
	var sum, max time.Duration
	for i := 0; i < r.count; i++ {
		d := r.buf[i]
		sum += d
		if d > max {
			max = d
		}
	}
	lastIdx := r.idx - 1
	if lastIdx < 0 {
		lastIdx = len(r.buf) - 1
	}
	return durationStats{
		last: r.buf[lastIdx],
		max:  max,
		avg:  sum / time.Duration(r.count),
		n:    r.count,
	}
}

// sessionMetrics tracks ingest and render health for one recording
// session. Producers and the render tick touch it from different
// goroutines, so everything is atomics plus a locked ring.
type sessionMetrics struct {
	enabled atomic.Bool

	acceptedSamples atomic.Uint64
	droppedSamples  atomic.Uint64
	rateReadings    atomic.Uint64
	firstIngestNs   atomic.Int64
	lastIngestNs    atomic.Int64

	frameLatency      *durationRing
	placeholderFrames atomic.Uint64
}

func newSessionMetrics(window int) *sessionMetrics {
	return &sessionMetrics{
		frameLatency: newDurationRing(window),
	}
}

func (m *sessionMetrics) setEnabled(v bool) { m.enabled.Store(v) }
func (m *sessionMetrics) isEnabled() bool   { return m.enabled.Load() }

func (m *sessionMetrics) observeSample(now time.Time, accepted bool) {
	if !m.isEnabled() {
		return
	}
	if !accepted {
		m.droppedSamples.Add(1)
		return
	}
	if now.IsZero() {
		now = time.Now()
	}
	nowNs := now.UnixNano()
	m.firstIngestNs.CompareAndSwap(0, nowNs)
	m.lastIngestNs.Store(nowNs)
	m.acceptedSamples.Add(1)
}

func (m *sessionMetrics) observeRateReading() {
	if !m.isEnabled() {
		return
	}
	m.rateReadings.Add(1)
}

func (m *sessionMetrics) observeFrame(d time.Duration, placeholder bool) {
	if !m.isEnabled() {
		return
	}
	m.frameLatency.add(d)
	if placeholder {
		m.placeholderFrames.Add(1)
	}
}

// resetSession zeroes everything for a fresh recording session.
func (m *sessionMetrics) resetSession() {
	m.acceptedSamples.Store(0)
	m.droppedSamples.Store(0)
	m.rateReadings.Store(0)
	m.firstIngestNs.Store(0)
	m.lastIngestNs.Store(0)
	m.placeholderFrames.Store(0)
	m.frameLatency.reset()
}

type metricsSnapshot struct {
	acceptedSamples   uint64
	droppedSamples    uint64
	rateReadings      uint64
	avgSamplesPerSec  uint64
	freshnessLag      time.Duration
	frameLatency      durationStats
	placeholderFrames uint64
}

func (m *sessionMetrics) snapshotAt(now time.Time) metricsSnapshot {
	if !m.isEnabled() {
		return metricsSnapshot{}
	}
	accepted := m.acceptedSamples.Load()
	firstNs := m.firstIngestNs.Load()
	lastNs := m.lastIngestNs.Load()

	avg := uint64(0)
	if firstNs != 0 && lastNs > firstNs {
		active := time.Duration(lastNs - firstNs)
		avg = uint64(float64(accepted)/active.Seconds() + 0.5)
	}

	lag := time.Duration(0)
	if lastNs != 0 {
		if d := now.Sub(time.Unix(0, lastNs)); d > 0 {
			lag = d
		}
	}

	return metricsSnapshot{
		acceptedSamples:   accepted,
		droppedSamples:    m.droppedSamples.Load(),
		rateReadings:      m.rateReadings.Load(),
		avgSamplesPerSec:  avg,
		freshnessLag:      lag,
		frameLatency:      m.frameLatency.snapshot(),
		placeholderFrames: m.placeholderFrames.Load(),
	}
}
