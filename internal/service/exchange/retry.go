package exchange

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
)

// retryingQuoteService decorates a QuoteService with a per-call timeout and a
// small bounded retry budget. Exhausting the budget surfaces the last error;
// nothing past this boundary ever blocks longer than attempts*(timeout+pause).
type retryingQuoteService struct {
	next     QuoteService
	attempts int
	timeout  time.Duration
}

func NewRetryingQuoteService(next QuoteService, attempts int, timeout time.Duration) QuoteService {
	if attempts < 1 {
		attempts = 1
	}
	return &retryingQuoteService{next: next, attempts: attempts, timeout: timeout}
}

func (s *retryingQuoteService) BookTicker(ctx context.Context, native string) (Quote, error) {
	// Backoff state is per call: the decorator is shared across pool workers.
	pause := &backoff.Backoff{Min: 50 * time.Millisecond, Max: 500 * time.Millisecond, Factor: 2}
	var lastErr error
	for attempt := 0; attempt < s.attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		quote, err := s.next.BookTicker(callCtx, native)
		cancel()
		if err == nil {
			return quote, nil
		}
		lastErr = err
		if attempt == s.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return Quote{}, ctx.Err()
		case <-time.After(pause.Duration()):
		}
	}
	return Quote{}, lastErr
}
