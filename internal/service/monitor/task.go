package monitor

import (
	"context"

	"github.com/KNICEX/spread-monitor/internal/schedule"
)

type SpreadMonitorTask struct {
	scheduler *Scheduler
}

func NewSpreadMonitorTask(scheduler *Scheduler) schedule.Task {
	return &SpreadMonitorTask{scheduler: scheduler}
}

func (t *SpreadMonitorTask) Run(ctx context.Context) error {
	return t.scheduler.RunCycle(ctx)
}

func (t *SpreadMonitorTask) Name() string {
	return "spread movement monitor task"
}
