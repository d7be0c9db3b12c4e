package report

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detail(start time.Time, d time.Duration, billable bool, projectID, projectName, color string) *domain.EntryDetail {
	end := start.Add(d)
	e := &domain.EntryDetail{
		TimeEntry: domain.TimeEntry{
			ID:          fmt.Sprintf("e-%d", start.Unix()),
			WorkspaceID: "ws",
			UserID:      "u",
			StartTime:   start,
			EndTime:     &end,
			Billable:    billable,
		},
		ProjectName:  projectName,
		ProjectColor: color,
	}
	if projectID != "" {
		e.ProjectID = &projectID
	}
	return e
}

// The worked scenario: 09:00-10:30 billable on project A, 11:00-11:20
// non-billable with no project.
func scenarioEntries() []*domain.EntryDetail {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return []*domain.EntryDetail{
		detail(day.Add(9*time.Hour), 90*time.Minute, true, "proj-a", "Alpha", "#FF5722"),
		detail(day.Add(11*time.Hour), 20*time.Minute, false, "", "", ""),
	}
}

func TestSummarize_Scenario(t *testing.T) {
	summary := Summarize(scenarioEntries())

	assert.Equal(t, 6600, summary.TotalDuration)
	assert.Equal(t, 5400, summary.BillableDuration)
	assert.Equal(t, 1200, summary.NonBillableDuration)
	assert.Equal(t, 2, summary.TotalEntries)

	require.Len(t, summary.ProjectBreakdown, 1, "entry without project is excluded from breakdown")
	slice := summary.ProjectBreakdown[0]
	assert.Equal(t, "proj-a", slice.ProjectID)
	assert.Equal(t, "Alpha", slice.ProjectName)
	assert.Equal(t, "#FF5722", slice.ProjectColor)
	assert.Equal(t, 5400, slice.Duration)
	assert.InDelta(t, 5400.0/6600.0*100, slice.Percentage, 1e-9,
		"projectless entry still counts toward the total the share is computed against")
}

func TestSummarize_BillableSplitSumsToTotal(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	var entries []*domain.EntryDetail
	for i := 0; i < 12; i++ {
		entries = append(entries, detail(
			day.Add(time.Duration(i)*2*time.Hour),
			time.Duration(7*i+13)*time.Minute,
			i%3 != 0,
			"", "", "",
		))
	}

	summary := Summarize(entries)
	assert.Equal(t, summary.TotalDuration, summary.BillableDuration+summary.NonBillableDuration)
}

func TestSummarize_BreakdownBounds(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	withGap := []*domain.EntryDetail{
		detail(day.Add(1*time.Hour), 30*time.Minute, true, "a", "A", ""),
		detail(day.Add(3*time.Hour), 45*time.Minute, true, "", "", ""),
	}
	summary := Summarize(withGap)
	var breakdownTotal int
	for _, s := range summary.ProjectBreakdown {
		breakdownTotal += s.Duration
	}
	assert.Less(t, breakdownTotal, summary.TotalDuration,
		"projectless entry counts toward totals only")

	allProjects := []*domain.EntryDetail{
		detail(day.Add(1*time.Hour), 30*time.Minute, true, "a", "A", ""),
		detail(day.Add(3*time.Hour), 45*time.Minute, true, "b", "B", ""),
		detail(day.Add(5*time.Hour), 15*time.Minute, false, "a", "A", ""),
	}
	summary = Summarize(allProjects)
	breakdownTotal = 0
	var pctTotal float64
	for _, s := range summary.ProjectBreakdown {
		breakdownTotal += s.Duration
		pctTotal += s.Percentage
	}
	assert.Equal(t, summary.TotalDuration, breakdownTotal)
	assert.True(t, math.Abs(pctTotal-100) < 1e-9, "percentages sum to 100, got %v", pctTotal)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalDuration)
	assert.Equal(t, 0, summary.TotalEntries)
	assert.Empty(t, summary.ProjectBreakdown)
}

func TestSummarize_ZeroTotalHasZeroPercentages(t *testing.T) {
	// Degenerate rows with equal timestamps can reach the aggregator from an
	// external writer; they must not divide by zero.
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	entries := []*domain.EntryDetail{
		detail(day, 0, true, "a", "A", ""),
	}
	summary := Summarize(entries)
	assert.Equal(t, 0, summary.TotalDuration)
	require.Len(t, summary.ProjectBreakdown, 1)
	assert.Zero(t, summary.ProjectBreakdown[0].Percentage)
}

func TestSummarize_BreakdownSortedByDurationDesc(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []*domain.EntryDetail{
		detail(day.Add(1*time.Hour), 10*time.Minute, true, "small", "Small", ""),
		detail(day.Add(3*time.Hour), 60*time.Minute, true, "big", "Big", ""),
		detail(day.Add(5*time.Hour), 30*time.Minute, true, "mid", "Mid", ""),
	}

	summary := Summarize(entries)
	require.Len(t, summary.ProjectBreakdown, 3)
	assert.Equal(t, "big", summary.ProjectBreakdown[0].ProjectID)
	assert.Equal(t, "mid", summary.ProjectBreakdown[1].ProjectID)
	assert.Equal(t, "small", summary.ProjectBreakdown[2].ProjectID)
}

func TestSummarize_TiesKeepEncounterOrder(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []*domain.EntryDetail{
		detail(day.Add(1*time.Hour), 30*time.Minute, true, "first", "First", ""),
		detail(day.Add(3*time.Hour), 30*time.Minute, true, "second", "Second", ""),
	}

	summary := Summarize(entries)
	require.Len(t, summary.ProjectBreakdown, 2)
	assert.Equal(t, "first", summary.ProjectBreakdown[0].ProjectID)
	assert.Equal(t, "second", summary.ProjectBreakdown[1].ProjectID)
}

func TestSummarize_UnresolvedProjectDefaults(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// Project id present but the join resolved nothing.
	entries := []*domain.EntryDetail{
		detail(day.Add(1*time.Hour), 30*time.Minute, true, "ghost", "", ""),
	}

	summary := Summarize(entries)
	require.Len(t, summary.ProjectBreakdown, 1)
	assert.Equal(t, domain.UnknownProjectName, summary.ProjectBreakdown[0].ProjectName)
	assert.Equal(t, domain.DefaultProjectColor, summary.ProjectBreakdown[0].ProjectColor)
}
