package domain

// ProjectSlice is one row of a report's per-project breakdown.
type ProjectSlice struct {
	ProjectID    string
	ProjectName  string
	ProjectColor string
	Duration     int // seconds
	Percentage   float64
}

// ReportSummary is the derived summary shape computed over a set of closed
// time entries. Durations are whole seconds. BillableDuration and
// NonBillableDuration always sum to TotalDuration.
type ReportSummary struct {
	TotalDuration       int
	BillableDuration    int
	NonBillableDuration int
	TotalEntries        int
	ProjectBreakdown    []ProjectSlice
}
