package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceAveragerFillsToCapacity(t *testing.T) {
	a := NewConfidenceAverager(3)

	_, ok := a.Mean()
	assert.False(t, ok, "empty set has no measurement")

	assert.True(t, a.Observe(60, 0.9))
	assert.True(t, a.Observe(62, 0.1))
	assert.True(t, a.Observe(64, 0.5))
	assert.Equal(t, 3, a.Count())

	mean, ok := a.Mean()
	require.True(t, ok)
	assert.InDelta(t, 62, mean, 1e-9)
}

func TestConfidenceAveragerReplacesWeakestWhenFull(t *testing.T) {
	a := NewConfidenceAverager(3)
	a.Observe(60, 0.9)
	a.Observe(62, 0.1)
	a.Observe(64, 0.5)

	// Not more confident than the weakest entry (0.1): rejected.
	assert.False(t, a.Observe(100, 0.1))
	assert.False(t, a.Observe(100, 0.05))
	assert.Equal(t, 3, a.Count())

	// Strictly more confident: evicts the 0.1 entry (value 62).
	assert.True(t, a.Observe(70, 0.6))
	mean, ok := a.Mean()
	require.True(t, ok)
	assert.InDelta(t, (60.0+64.0+70.0)/3, mean, 1e-9)

	// The weakest is now the 0.5 entry (value 64).
	assert.True(t, a.Observe(66, 0.95))
	mean, _ = a.Mean()
	assert.InDelta(t, (60.0+70.0+66.0)/3, mean, 1e-9)
}

func TestConfidenceAveragerRejectsNonFinite(t *testing.T) {
	a := NewConfidenceAverager(3)
	assert.False(t, a.Observe(math.NaN(), 0.9))
	assert.False(t, a.Observe(60, math.Inf(1)))
	assert.Equal(t, 0, a.Count())
}

func TestConfidenceAveragerReset(t *testing.T) {
	a := NewConfidenceAverager(3)
	a.Observe(60, 0.9)
	a.Observe(62, 0.8)
	a.Reset()
	assert.Equal(t, 0, a.Count())
	_, ok := a.Mean()
	assert.False(t, ok)

	a.Observe(10, 0.5)
	mean, ok := a.Mean()
	require.True(t, ok)
	assert.InDelta(t, 10, mean, 1e-9)
}

func TestConfidenceAveragerMinimumCapacity(t *testing.T) {
	a := NewConfidenceAverager(0)
	assert.True(t, a.Observe(60, 0.5))
	assert.False(t, a.Observe(70, 0.5))
	assert.True(t, a.Observe(70, 0.6))
	mean, _ := a.Mean()
	assert.InDelta(t, 70, mean, 1e-9)
}
