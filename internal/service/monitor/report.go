package monitor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

const timeLayout = "2006-01-02 15:04:05"

// RenderReport renders the final window state into the textual summary pushed
// to the notification sink. Symbols are sorted for stable output; each line
// carries the true movement count, extrema, and sample count, and at most the
// most recent movement log entries.
func RenderReport(w *MonitoringWindow, closedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Movement report, %s window (%s)\n",
		w.Duration, closedAt.Format(timeLayout))

	symbols := lo.Keys(w.Candidates)
	sort.Strings(symbols)

	for _, symbol := range symbols {
		c := w.Candidates[symbol]
		fmt.Fprintf(&b, "%s | movements=%d | min=%+.4f%% | max=%+.4f%% | samples=%d\n",
			symbol, c.Movements, c.Min, c.Max, c.Samples)
		if len(c.Log) > 0 {
			moves := lo.Map(c.Log, func(event MovementEvent, _ int) string {
				return fmt.Sprintf("%s (%+.4f%%)", event.At.Format(timeLayout), event.Spread)
			})
			fmt.Fprintf(&b, "   moves: %s\n", strings.Join(moves, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
