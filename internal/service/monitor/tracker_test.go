package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KNICEX/spread-monitor/internal/service/spread"
)

func sampleAt(value float64) spread.Sample {
	return spread.Sample{Value: value, TakenAt: time.Now()}
}

func seededCandidate(seed float64) *CandidateState {
	return newCandidateState("BTCUSDT", "XBTUSDTM", sampleAt(seed))
}

func TestQuantizedPolicy_MultiStepJump(t *testing.T) {
	policy, err := PolicyFromName(PolicyQuantized, 0.50)
	require.NoError(t, err)
	tracker := NewTracker(policy)

	c := seededCandidate(0.20)
	steps := tracker.Observe(c, sampleAt(1.35))

	// A jump of 1.15 is two full steps; the reference rebases by exactly the
	// credited displacement, not to the sample.
	assert.Equal(t, 2, steps)
	assert.Equal(t, 2, c.Movements)
	assert.InDelta(t, 1.20, c.Reference, 1e-9)
}

func TestQuantizedPolicy_NoDoubleCounting(t *testing.T) {
	policy, _ := PolicyFromName(PolicyQuantized, 0.50)
	tracker := NewTracker(policy)

	c := seededCandidate(0.20)
	tracker.Observe(c, sampleAt(0.75)) // one step, reference -> 0.70
	steps := tracker.Observe(c, sampleAt(0.80))

	assert.Equal(t, 0, steps)
	assert.Equal(t, 1, c.Movements)
}

func TestQuantizedPolicy_DownwardMove(t *testing.T) {
	policy, _ := PolicyFromName(PolicyQuantized, 0.50)
	tracker := NewTracker(policy)

	c := seededCandidate(0.20)
	steps := tracker.Observe(c, sampleAt(-0.85))

	assert.Equal(t, 2, steps)
	assert.InDelta(t, -0.80, c.Reference, 1e-9)
}

func TestSimplePolicy_ReferenceSnapsToSample(t *testing.T) {
	policy, err := PolicyFromName(PolicySimple, 0.50)
	require.NoError(t, err)
	tracker := NewTracker(policy)

	c := seededCandidate(0.20)
	steps := tracker.Observe(c, sampleAt(1.35))

	// Unlike the quantized policy, one crossing is one movement and the
	// reference jumps to the sample itself.
	assert.Equal(t, 1, steps)
	assert.InDelta(t, 1.35, c.Reference, 1e-9)
}

func TestRisingEdgePolicy_CountsTransitionsOnly(t *testing.T) {
	policy, err := PolicyFromName(PolicyRisingEdge, 0.50)
	require.NoError(t, err)
	tracker := NewTracker(policy)

	c := seededCandidate(0.20)
	values := []float64{0.60, 0.70, 0.80, 0.30, 0.90, -0.55}
	for _, v := range values {
		tracker.Observe(c, sampleAt(v))
	}

	// Outside at 0.60 (one), stays outside, re-arms at 0.30, outside at 0.90
	// (two), stays outside at -0.55: magnitude never went inside.
	assert.Equal(t, 2, c.Movements)
}

func TestPolicyFromName_Unknown(t *testing.T) {
	_, err := PolicyFromName("whatever", 0.5)
	assert.Error(t, err)
}

func TestTracker_ExtremaAndSamples(t *testing.T) {
	policy, _ := PolicyFromName(PolicyQuantized, 0.50)
	tracker := NewTracker(policy)

	c := seededCandidate(0.25)
	for _, v := range []float64{0.25, 0.90, 1.50} {
		tracker.Observe(c, sampleAt(v))
	}

	assert.Equal(t, 3, c.Samples)
	assert.Equal(t, 2, c.Movements)
	assert.InDelta(t, 0.25, c.Min, 1e-9)
	assert.InDelta(t, 1.50, c.Max, 1e-9)
	assert.InDelta(t, 1.25, c.Reference, 1e-9)
	assert.InDelta(t, 1.50, c.LastSpread, 1e-9)
}

func TestTracker_ExtremaTrackRawSamples(t *testing.T) {
	policy, _ := PolicyFromName(PolicyQuantized, 0.50)
	tracker := NewTracker(policy)

	// Extrema follow every observed sample; the reference moves on its own and
	// may end up outside [min, max] ordering guarantees.
	c := seededCandidate(0.00)
	tracker.Observe(c, sampleAt(0.40))
	tracker.Observe(c, sampleAt(-0.20))

	assert.InDelta(t, -0.20, c.Min, 1e-9)
	assert.InDelta(t, 0.40, c.Max, 1e-9)
	assert.InDelta(t, 0.00, c.Reference, 1e-9)
}

func TestTracker_LogCappedCountRetained(t *testing.T) {
	policy, _ := PolicyFromName(PolicyQuantized, 0.50)
	tracker := NewTracker(policy)

	c := seededCandidate(0)
	value := 0.0
	for i := 0; i < 12; i++ {
		value += 0.50
		tracker.Observe(c, sampleAt(value))
	}

	assert.Equal(t, 12, c.Movements)
	assert.Len(t, c.Log, movementLogCap)
	// The retained entries are the most recent ones.
	assert.InDelta(t, 6.0, c.Log[len(c.Log)-1].Spread, 1e-9)
}
