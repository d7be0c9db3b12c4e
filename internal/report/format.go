package report

import "fmt"

// FormatDuration renders seconds as "2h 15m", or "15m" under an hour.
// Presentation helper shared by the CLI views.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDurationDecimal renders seconds as decimal hours to two places
// ("1.50"). The CSV export uses this style, not the h/m one: downstream
// billing consumers expect decimal-hour columns.
func FormatDurationDecimal(seconds int) string {
	return fmt.Sprintf("%.2f", float64(seconds)/3600)
}
