package monitor

import (
	"time"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
	"github.com/KNICEX/spread-monitor/internal/service/spread"
)

// Config is the immutable tuning surface of one monitor instance, constructed
// at startup and never mutated.
type Config struct {
	ScanThreshold  float64       // shortlist threshold, percent, inclusive
	MovementStep   float64       // movement quantum, percent
	WindowDuration time.Duration // length of one monitoring window
	TickInterval   time.Duration // polling cadence inside a window
	MaxConcurrency int           // fetch worker pool size
	Policy         string        // movement counting policy name
	EmptyScanPause time.Duration // pause before rescanning when nothing shortlists
}

// WithDefaults fills unset fields with the stock tuning. Idempotent.
func (c Config) WithDefaults() Config {
	if c.ScanThreshold == 0 {
		c.ScanThreshold = 0.2
	}
	if c.MovementStep == 0 {
		c.MovementStep = 0.5
	}
	if c.WindowDuration == 0 {
		c.WindowDuration = 10 * time.Minute
	}
	if c.TickInterval == 0 {
		c.TickInterval = 2 * time.Second
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = 20
	}
	if c.Policy == "" {
		c.Policy = PolicyQuantized
	}
	if c.EmptyScanPause == 0 {
		c.EmptyScanPause = 3 * time.Second
	}
	return c
}

// MovementEvent is one logged movement confirmation.
type MovementEvent struct {
	At     time.Time
	Spread float64
}

// movementLogCap bounds the retained movement log per candidate. The movement
// count keeps the true total even after the log starts dropping old entries.
const movementLogCap = 8

// CandidateState is the per-symbol accumulator for one monitoring window. It
// is owned by the tick-processing pass: single writer, no locking needed.
type CandidateState struct {
	NativeA string
	NativeB string

	Reference  float64 // moving anchor for movement detection
	Min        float64 // extrema over all observed samples
	Max        float64
	Samples    int
	Movements  int
	LastSpread float64
	Log        []MovementEvent

	outside bool // rising-edge policy bookkeeping
}

func newCandidateState(nativeA, nativeB string, seed spread.Sample) *CandidateState {
	return &CandidateState{
		NativeA:    nativeA,
		NativeB:    nativeB,
		Reference:  seed.Value,
		Min:        seed.Value,
		Max:        seed.Value,
		LastSpread: seed.Value,
	}
}

// MonitoringWindow is the full state of one monitoring phase. Created at
// shortlist time, discarded after reporting; nothing survives across windows.
type MonitoringWindow struct {
	StartedAt    time.Time
	Duration     time.Duration
	TickInterval time.Duration
	Candidates   map[string]*CandidateState
}

// ScanResult is the output of one full-scan pass.
type ScanResult struct {
	Mapping    exchange.SymbolMapping
	Candidates map[string]*CandidateState
}
