package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/jpillora/backoff"
)

// Forever runs the task cycle after cycle until ctx is cancelled. A failed or
// panicking cycle is logged with full context and followed by a backoff pause;
// the runner itself never exits on a caught error.
func Forever(ctx context.Context, task Task) {
	pause := &backoff.Backoff{
		Min:    time.Second,
		Max:    30 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	for {
		if ctx.Err() != nil {
			return
		}
		if err := runOnce(ctx, task); err != nil {
			slog.Error("task cycle failed", "task", task.Name(), "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(pause.Duration()):
			}
			continue
		}
		pause.Reset()
	}
}

func runOnce(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return task.Run(ctx)
}
