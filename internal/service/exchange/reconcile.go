package exchange

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/jpillora/backoff"
	"github.com/samber/lo"
)

// SymbolMapping associates canonical symbols with the native symbol used by
// each exchange. Built once per full scan and immutable for the duration of a
// monitoring window.
type SymbolMapping struct {
	a map[string]string
	b map[string]string
}

// NativeA returns exchange A's native symbol for a canonical one. Exchange A's
// native names normalize to themselves, so a missing entry falls back to the
// canonical form.
func (m SymbolMapping) NativeA(canonical string) string {
	if native, ok := m.a[canonical]; ok {
		return native
	}
	return canonical
}

// NativeB returns exchange B's native symbol for a canonical one, falling back
// to the canonical form plus the perpetual marker when the listing pass did not
// capture one.
func (m SymbolMapping) NativeB(canonical string) string {
	if native, ok := m.b[canonical]; ok {
		return native
	}
	return canonical + "M"
}

// Reconciler discovers the tradable instrument sets of both exchanges and
// intersects their canonical forms.
type Reconciler struct {
	a        SymbolService
	b        SymbolService
	attempts int
}

func NewReconciler(a, b SymbolService) *Reconciler {
	return &Reconciler{a: a, b: b, attempts: 2}
}

// Reconcile returns the sorted canonical intersection and the symbol mapping.
// A listing failure on either side, after the retry budget, yields an error;
// callers treat that cycle as having nothing to do rather than as fatal.
//
// When several natives normalize to the same canonical symbol, the first one
// in listing order wins. That tie-break is implementation-defined, not a
// stability guarantee.
func (r *Reconciler) Reconcile(ctx context.Context) ([]string, SymbolMapping, error) {
	instrumentsA, err := r.listWithRetry(ctx, r.a)
	if err != nil {
		return nil, SymbolMapping{}, err
	}
	instrumentsB, err := r.listWithRetry(ctx, r.b)
	if err != nil {
		return nil, SymbolMapping{}, err
	}

	mapping := SymbolMapping{
		a: firstNativeByCanonical(instrumentsA),
		b: firstNativeByCanonical(instrumentsB),
	}

	common := lo.Filter(lo.Keys(mapping.a), func(canonical string, _ int) bool {
		_, ok := mapping.b[canonical]
		return ok
	})
	sort.Strings(common)
	return common, mapping, nil
}

func (r *Reconciler) listWithRetry(ctx context.Context, svc SymbolService) ([]Instrument, error) {
	pause := &backoff.Backoff{Min: 200 * time.Millisecond, Max: 2 * time.Second, Factor: 2}
	var lastErr error
	for attempt := 0; attempt < r.attempts; attempt++ {
		instruments, err := svc.ActiveInstruments(ctx)
		if err == nil {
			return instruments, nil
		}
		lastErr = err
		slog.Warn("instrument listing fetch failed", "attempt", attempt+1, "error", err)
		if attempt == r.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pause.Duration()):
		}
	}
	return nil, lastErr
}

func firstNativeByCanonical(instruments []Instrument) map[string]string {
	out := make(map[string]string, len(instruments))
	for _, instrument := range instruments {
		if _, ok := out[instrument.Canonical]; !ok {
			out[instrument.Canonical] = instrument.Native
		}
	}
	return out
}
