package monitor

import (
	"fmt"
	"math"

	"github.com/KNICEX/spread-monitor/internal/service/spread"
)

const (
	// PolicyQuantized credits floor(|delta|/step) movements per sample and
	// re-anchors the reference by exactly the credited displacement, so a
	// sustained move is never double counted and a multi-step jump is credited
	// in full.
	PolicyQuantized = "quantized"
	// PolicySimple credits one movement per crossing and snaps the reference
	// to the sample itself.
	PolicySimple = "simple"
	// PolicyRisingEdge credits one movement per inside-to-outside transition
	// across a fixed absolute threshold, regardless of displacement size.
	PolicyRisingEdge = "rising-edge"
)

// MovementPolicy consumes one sample for one candidate and returns how many
// movements it confirms. Implementations may re-anchor c.Reference or use
// per-candidate bookkeeping, but never touch counters or extrema.
type MovementPolicy interface {
	Apply(c *CandidateState, s spread.Sample) int
}

// PolicyFromName resolves a configured policy name. The three policies produce
// materially different counts on the same input and are never mixed.
func PolicyFromName(name string, step float64) (MovementPolicy, error) {
	switch name {
	case PolicyQuantized:
		return quantizedStepPolicy{step: step}, nil
	case PolicySimple:
		return simpleResetPolicy{step: step}, nil
	case PolicyRisingEdge:
		return risingEdgePolicy{threshold: step}, nil
	default:
		return nil, fmt.Errorf("unknown movement policy %q", name)
	}
}

type quantizedStepPolicy struct {
	step float64
}

func (p quantizedStepPolicy) Apply(c *CandidateState, s spread.Sample) int {
	delta := s.Value - c.Reference
	if math.Abs(delta) < p.step {
		return 0
	}
	steps := int(math.Floor(math.Abs(delta) / p.step))
	c.Reference += float64(steps) * p.step * math.Copysign(1, delta)
	return steps
}

type simpleResetPolicy struct {
	step float64
}

func (p simpleResetPolicy) Apply(c *CandidateState, s spread.Sample) int {
	if math.Abs(s.Value-c.Reference) < p.step {
		return 0
	}
	c.Reference = s.Value
	return 1
}

type risingEdgePolicy struct {
	threshold float64
}

func (p risingEdgePolicy) Apply(c *CandidateState, s spread.Sample) int {
	outside := math.Abs(s.Value) >= p.threshold
	if !outside {
		c.outside = false
		return 0
	}
	if c.outside {
		return 0
	}
	c.outside = true
	return 1
}

// Tracker applies one movement policy to candidate state, one sample per tick.
// A tick with no valid sample must simply not call Observe: absent data leaves
// the candidate entirely unmutated.
type Tracker struct {
	policy MovementPolicy
}

func NewTracker(policy MovementPolicy) *Tracker {
	return &Tracker{policy: policy}
}

// Observe folds one sample into the candidate and returns the number of
// movements it confirmed.
func (t *Tracker) Observe(c *CandidateState, s spread.Sample) int {
	c.Samples++
	c.Min = math.Min(c.Min, s.Value)
	c.Max = math.Max(c.Max, s.Value)

	steps := t.policy.Apply(c, s)
	if steps > 0 {
		c.Movements += steps
		c.Log = append(c.Log, MovementEvent{At: s.TakenAt, Spread: s.Value})
		if len(c.Log) > movementLogCap {
			c.Log = c.Log[len(c.Log)-movementLogCap:]
		}
	}
	c.LastSpread = s.Value
	return steps
}
