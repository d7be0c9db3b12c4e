package formatter

import (
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/report"
)

// TruncID shortens a uuid to its first 8 characters for table display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// HumanTimestamp renders a timestamp in the local timezone.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("Jan 02 15:04")
}

// TimeRange renders the span of an entry; an open entry shows a dash for
// the end.
func TimeRange(e *domain.TimeEntry) string {
	start := e.StartTime.Local().Format("15:04")
	if e.EndTime == nil {
		return start + "–now"
	}
	return start + "–" + e.EndTime.Local().Format("15:04")
}

// DurationCell renders a closed entry's duration; open entries show the
// running indicator instead.
func DurationCell(e *domain.TimeEntry) string {
	if e.Running() {
		return RunningIndicator()
	}
	return report.FormatDuration(e.DurationSeconds())
}

// ElapsedClock renders elapsed seconds as hh:mm:ss for the live timer view.
func ElapsedClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Percentage renders a breakdown share with one decimal.
func Percentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
