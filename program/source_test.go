package main

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	kind       string
	vital      string
	sample     Sample
	rate       float64
	confidence float64
	state      RecordingState
	hint       string
}

// recordingSink captures producer output for assertions. The mutex is
// only there for the simulator test, which feeds it from a goroutine.
type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
	onEach func(n int)
}

func (s *recordingSink) add(e recordedEvent) {
	s.mu.Lock()
	s.events = append(s.events, e)
	n := len(s.events)
	onEach := s.onEach
	s.mu.Unlock()
	if onEach != nil {
		onEach(n)
	}
}

func (s *recordingSink) WaveformSample(vital string, sample Sample) {
	s.add(recordedEvent{kind: "sample", vital: vital, sample: sample})
}

func (s *recordingSink) RateReading(vital string, value, confidence float64) {
	s.add(recordedEvent{kind: "rate", vital: vital, rate: value, confidence: confidence})
}

func (s *recordingSink) StatusUpdate(state RecordingState, hint string) {
	s.add(recordedEvent{kind: "status", state: state, hint: hint})
}

func (s *recordingSink) snapshot() []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recordedEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestJSONStreamReaderDispatch(t *testing.T) {
	input := `
{"status":"recording","hint":"hold still"}
{"vital":"pulse","time":0.1,"value":0.42}
{"vital":"pulse","rate":71.5,"confidence":0.93}
{"vital":"breathing","time":0.2,"value":-0.1}
{"status":"stopped"}
`
	sink := &recordingSink{}
	reader := &jsonStreamReader{}
	err := reader.Run(strings.NewReader(input), sink)
	require.NoError(t, err)

	events := sink.snapshot()
	require.Len(t, events, 5)

	assert.Equal(t, "status", events[0].kind)
	assert.Equal(t, StateRecording, events[0].state)
	assert.Equal(t, "hold still", events[0].hint)

	assert.Equal(t, "sample", events[1].kind)
	assert.Equal(t, "pulse", events[1].vital)
	assert.InDelta(t, 0.1, events[1].sample.Time, 1e-9)
	assert.InDelta(t, 0.42, events[1].sample.Value, 1e-9)

	assert.Equal(t, "rate", events[2].kind)
	assert.InDelta(t, 71.5, events[2].rate, 1e-9)
	assert.InDelta(t, 0.93, events[2].confidence, 1e-9)

	assert.Equal(t, "sample", events[3].kind)
	assert.Equal(t, "breathing", events[3].vital)

	assert.Equal(t, "status", events[4].kind)
	assert.Equal(t, StateStopped, events[4].state)
}

func TestJSONStreamReaderSkipsMalformedRecords(t *testing.T) {
	input := `
{"status":"launching"}
{"vital":"","time":1,"value":2}
{"time":1,"rate":60,"confidence":0.5}
{"vital":"pulse","time":1,"value":2}
`
	sink := &recordingSink{}
	reader := &jsonStreamReader{}
	err := reader.Run(strings.NewReader(input), sink)
	require.NoError(t, err)

	events := sink.snapshot()
	require.Len(t, events, 1, "unknown status and vital-less records are skipped")
	assert.Equal(t, "sample", events[0].kind)
}

func TestJSONStreamReaderMaxRecords(t *testing.T) {
	input := `
{"vital":"pulse","time":1,"value":1}
{"vital":"pulse","time":2,"value":2}
{"vital":"pulse","time":3,"value":3}
`
	sink := &recordingSink{}
	reader := &jsonStreamReader{MaxRecords: 2}
	err := reader.Run(strings.NewReader(input), sink)
	require.NoError(t, err)
	assert.Len(t, sink.snapshot(), 2)
}

func TestJSONStreamReaderDecodeError(t *testing.T) {
	sink := &recordingSink{}
	reader := &jsonStreamReader{}
	err := reader.Run(strings.NewReader(`{"vital":`), sink)
	assert.Error(t, err)
}

func TestRecordingStateRoundTrip(t *testing.T) {
	for _, state := range []RecordingState{StateIdle, StateRecording, StateStopped} {
		parsed, ok := parseRecordingState(state.String())
		require.True(t, ok)
		assert.Equal(t, state, parsed)
	}
	_, ok := parseRecordingState("rebooting")
	assert.False(t, ok)
}

func TestSimulatorWavesAreFiniteAndBounded(t *testing.T) {
	w := newWaveformSimulator(72, 14, 0.05, 4, 1)
	for i := 0; i < 1000; i++ {
		tm := float64(i) * 0.013
		p := w.pulseWave(tm)
		b := w.breathingWave(tm)
		require.False(t, math.IsNaN(p) || math.IsInf(p, 0))
		require.False(t, math.IsNaN(b) || math.IsInf(b, 0))
		assert.Less(t, math.Abs(p), 2.0)
		assert.Less(t, math.Abs(b), 2.0)
	}
}

func TestSimulatorEmitsMonotonicSamples(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{}
	sink.onEach = func(n int) {
		if n >= 12 {
			cancel()
		}
	}

	// High sample rate keeps the test fast; the jittered intervals are
	// still strictly positive, so sample times must strictly increase.
	sim := newWaveformSimulator(72, 14, 0.01, 500, 7)
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, sink)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("simulator did not stop after cancel")
	}

	events := sink.snapshot()
	require.GreaterOrEqual(t, len(events), 12)
	assert.Equal(t, "status", events[0].kind)
	assert.Equal(t, StateRecording, events[0].state)
	assert.Equal(t, "status", events[len(events)-1].kind)
	assert.Equal(t, StateStopped, events[len(events)-1].state)

	lastTime := map[string]float64{}
	sawVital := map[string]bool{}
	for _, e := range events {
		if e.kind != "sample" {
			continue
		}
		sawVital[e.vital] = true
		if prev, ok := lastTime[e.vital]; ok {
			assert.Greater(t, e.sample.Time, prev)
		}
		lastTime[e.vital] = e.sample.Time
	}
	assert.True(t, sawVital[vitalPulse])
	assert.True(t, sawVital[vitalBreathing])
}
