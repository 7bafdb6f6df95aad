package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"
)

const (
	vitalPulse     = "pulse"
	vitalBreathing = "breathing"
)

// RecordingState is the capture producer's coarse status signal.
type RecordingState int

const (
	StateIdle RecordingState = iota
	StateRecording
	StateStopped
)

func (s RecordingState) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

func parseRecordingState(s string) (RecordingState, bool) {
	switch s {
	case "idle":
		return StateIdle, true
	case "recording":
		return StateRecording, true
	case "stopped":
		return StateStopped, true
	}
	return StateIdle, false
}

// streamSink receives everything a capture producer emits: waveform
// samples, rate estimates with a confidence score, and status/hint
// updates. Implementations are responsible for marshaling onto their
// own update context; producers call these from their own goroutine.
type streamSink interface {
	WaveformSample(vital string, s Sample)
	RateReading(vital string, value, confidence float64)
	StatusUpdate(state RecordingState, hint string)
}

// streamRecord is one JSON record on a piped capture stream. Exactly
// one of value/rate/status is expected per record.
type streamRecord struct {
	Vital      string   `json:"vital"`
	Time       float64  `json:"time"`
	Value      *float64 `json:"value"`
	Rate       *float64 `json:"rate"`
	Confidence float64  `json:"confidence"`
	Status     string   `json:"status"`
	Hint       string   `json:"hint"`
}

type jsonStreamReader struct {
	MaxRecords int
	Pace       time.Duration

	// Replay sleeps between waveform samples by their time deltas,
	// scaled by Speed and capped by MaxSleep, so a recorded stream
	// plays back at capture pace instead of as fast as it decodes.
	Replay   bool
	Speed    float64
	MaxSleep time.Duration
}

// Run decodes records from r into the sink until EOF, a decode error,
// or the record limit. Record kinds it does not recognize are skipped.
func (j *jsonStreamReader) Run(r io.Reader, sink streamSink) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	speed := j.Speed
	if speed <= 0 {
		speed = 1.0
	}
	var prevSampleTime float64
	havePrev := false
	n := 0
	for {
		if j.MaxRecords > 0 && n >= j.MaxRecords {
			return nil
		}
		var rec streamRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		n++

		switch {
		case rec.Status != "":
			state, ok := parseRecordingState(rec.Status)
			if !ok {
				continue
			}
			sink.StatusUpdate(state, rec.Hint)
		case rec.Rate != nil:
			if rec.Vital == "" {
				continue
			}
			sink.RateReading(rec.Vital, *rec.Rate, rec.Confidence)
		case rec.Value != nil:
			if rec.Vital == "" {
				continue
			}
			if j.Replay && havePrev {
				delta := rec.Time - prevSampleTime
				if delta > 0 {
					sleep := time.Duration(delta / speed * float64(time.Second))
					if j.MaxSleep > 0 && sleep > j.MaxSleep {
						sleep = j.MaxSleep
					}
					time.Sleep(sleep)
				}
			}
			prevSampleTime = rec.Time
			havePrev = true
			sink.WaveformSample(rec.Vital, Sample{Time: rec.Time, Value: *rec.Value})
		}

		if !j.Replay && j.Pace > 0 {
			time.Sleep(j.Pace)
		}
	}
}

// waveformSimulator stands in for the capture producer when nothing is
// piped in: a pulse waveform with QRS-like bumps and a breathing sine,
// emitted at irregular jittered intervals, plus rate estimates with a
// wandering confidence score. Not clinical; it only has to look alive.
type waveformSimulator struct {
	PulseBPM     float64
	BreathingRPM float64
	Noise        float64
	SampleHz     float64

	rng *rand.Rand
}

func newWaveformSimulator(pulseBPM, breathingRPM, noise, sampleHz float64, seed uint64) *waveformSimulator {
	return &waveformSimulator{
		PulseBPM:     pulseBPM,
		BreathingRPM: breathingRPM,
		Noise:        noise,
		SampleHz:     sampleHz,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Run emits into the sink until the context is canceled.
func (w *waveformSimulator) Run(ctx context.Context, sink streamSink) {
	sink.StatusUpdate(StateRecording, fmt.Sprintf("simulated capture (%.0f bpm / %.0f rpm)", w.PulseBPM, w.BreathingRPM))
	defer sink.StatusUpdate(StateStopped, "simulated capture stopped")

	base := time.Second / 4
	if w.SampleHz > 0 {
		base = time.Duration(float64(time.Second) / w.SampleHz)
	}

	// Irregular arrival: jitter each interval in [0.5, 1.5)x.
	jitter := func() time.Duration {
		return time.Duration(float64(base) * (0.5 + w.rng.Float64()))
	}

	start := time.Now()
	timer := time.NewTimer(jitter())
	defer timer.Stop()
	lastRate := time.Time{}
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-timer.C:
			t := now.Sub(start).Seconds()
			sink.WaveformSample(vitalPulse, Sample{Time: t, Value: w.pulseWave(t)})
			sink.WaveformSample(vitalBreathing, Sample{Time: t, Value: w.breathingWave(t)})
			if lastRate.IsZero() || now.Sub(lastRate) >= time.Second {
				lastRate = now
				wander := (w.rng.Float64() - 0.5) * 4
				sink.RateReading(vitalPulse, w.PulseBPM+wander, 0.55+0.45*w.rng.Float64())
				sink.RateReading(vitalBreathing, w.BreathingRPM+wander/4, 0.55+0.45*w.rng.Float64())
			}
			timer.Reset(jitter())
		}
	}
}

// pulseWave shapes one cardiac cycle out of gaussian bumps (P, QRS, T)
// over a slow baseline drift, plus cheap deterministic noise.
func (w *waveformSimulator) pulseWave(t float64) float64 {
	cycleHz := w.PulseBPM / 60.0
	phase := t * cycleHz
	phase -= math.Floor(phase)

	baseline := 0.05 * math.Sin(2*math.Pi*0.33*phase)
	p := 0.08 * gaussBump(phase, 0.18, 0.03)
	q := -0.12 * gaussBump(phase, 0.30, 0.01)
	r := 1.00 * gaussBump(phase, 0.32, 0.008)
	s := -0.25 * gaussBump(phase, 0.35, 0.012)
	tw := 0.25 * gaussBump(phase, 0.60, 0.06)
	n := w.Noise * (2*fracOf(math.Sin(12345.678*t)*9876.543) - 1)
	return baseline + p + q + r + s + tw + n
}

func (w *waveformSimulator) breathingWave(t float64) float64 {
	cycleHz := w.BreathingRPM / 60.0
	n := w.Noise * 0.5 * (2*fracOf(math.Sin(54321.987*t)*6789.123) - 1)
	return math.Sin(2*math.Pi*cycleHz*t) + n
}

func gaussBump(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

func fracOf(x float64) float64 { return x - math.Floor(x) }
