package schedule

import "context"

// Task is one unit of supervised work; Run executes a single cycle.
type Task interface {
	Run(ctx context.Context) error
	Name() string
}
