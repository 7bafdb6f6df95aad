package main

// reading is one rate estimate kept for averaging.
type reading struct {
	value      float64
	confidence float64
}

// ConfidenceAverager reduces a stream of rate estimates to a single
// measurement: it keeps the highest-confidence readings seen so far, up
// to a fixed capacity, and reports the mean of their values. Once
// full, a new reading only enters the set by evicting the current
// lowest-confidence entry, and only if it is strictly more confident.
type ConfidenceAverager struct {
	capacity int
	readings []reading
	sum      float64
}

func NewConfidenceAverager(capacity int) *ConfidenceAverager {
	if capacity < 1 {
		capacity = 1
	}
	return &ConfidenceAverager{
		capacity: capacity,
		readings: make([]reading, 0, capacity),
	}
}

// Observe offers a reading to the set and reports whether it was kept.
// Non-finite values and confidences are dropped.
func (a *ConfidenceAverager) Observe(value, confidence float64) bool {
	if !isFinite(value) || !isFinite(confidence) {
		return false
	}
	if len(a.readings) < a.capacity {
		a.readings = append(a.readings, reading{value, confidence})
		a.sum += value
		return true
	}
	weakest := 0
	for i := 1; i < len(a.readings); i++ {
		if a.readings[i].confidence < a.readings[weakest].confidence {
			weakest = i
		}
	}
	if confidence <= a.readings[weakest].confidence {
		return false
	}
	a.sum -= a.readings[weakest].value
	a.readings[weakest] = reading{value, confidence}
	a.sum += value
	return true
}

// Mean returns the measurement over the stored readings. ok is false
// while the set is empty.
func (a *ConfidenceAverager) Mean() (mean float64, ok bool) {
	if len(a.readings) == 0 {
		return 0, false
	}
	return a.sum / float64(len(a.readings)), true
}

func (a *ConfidenceAverager) Count() int {
	return len(a.readings)
}

func (a *ConfidenceAverager) Reset() {
	a.readings = a.readings[:0]
	a.sum = 0
}
