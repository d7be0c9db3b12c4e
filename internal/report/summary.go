// Package report computes the reporting summary over closed time entries:
// total and billable durations, a per-project percentage breakdown, and the
// CSV billing export. Everything here is a pure function of the entry list.
package report

import (
	"sort"

	"github.com/danielgrim/tempora/internal/domain"
)

// Summarize aggregates closed entries into a ReportSummary.
//
// Entries without a project contribute to the duration totals but not the
// breakdown. The breakdown is sorted by duration descending; ties keep the
// order in which the projects were first encountered.
func Summarize(entries []*domain.EntryDetail) domain.ReportSummary {
	summary := domain.ReportSummary{TotalEntries: len(entries)}

	type bucket struct {
		name     string
		color    string
		duration int
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, entry := range entries {
		duration := entry.DurationSeconds()
		summary.TotalDuration += duration
		if entry.Billable {
			summary.BillableDuration += duration
		} else {
			summary.NonBillableDuration += duration
		}

		if entry.ProjectID == nil {
			continue
		}
		id := *entry.ProjectID
		if b, ok := buckets[id]; ok {
			b.duration += duration
			continue
		}
		buckets[id] = &bucket{
			name:     domain.CoalesceStr(entry.ProjectName, domain.UnknownProjectName),
			color:    domain.CoalesceStr(entry.ProjectColor, domain.DefaultProjectColor),
			duration: duration,
		}
		order = append(order, id)
	}

	breakdown := make([]domain.ProjectSlice, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		slice := domain.ProjectSlice{
			ProjectID:    id,
			ProjectName:  b.name,
			ProjectColor: b.color,
			Duration:     b.duration,
		}
		if summary.TotalDuration > 0 {
			slice.Percentage = float64(b.duration) / float64(summary.TotalDuration) * 100
		}
		breakdown = append(breakdown, slice)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Duration > breakdown[j].Duration
	})
	summary.ProjectBreakdown = breakdown

	return summary
}
