package report

import (
	"strings"

	"github.com/danielgrim/tempora/internal/domain"
)

var csvHeader = []string{
	"Date", "Start Time", "End Time", "Duration",
	"Project", "Task", "Description", "Billable",
}

const (
	csvDateLayout = "2006-01-02"
	csvTimeLayout = "15:04:05"
)

// GenerateCSV renders entries as a delimited export: one header row, one row
// per entry, every field double-quoted with embedded quotes doubled. The
// Duration column is decimal hours. An entry still running exports an empty
// End Time cell and duration "0.00".
func GenerateCSV(entries []*domain.EntryDetail) string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, csvHeader)

	for _, entry := range entries {
		endTime := ""
		if entry.EndTime != nil {
			endTime = entry.EndTime.Format(csvTimeLayout)
		}
		billable := "No"
		if entry.Billable {
			billable = "Yes"
		}
		rows = append(rows, []string{
			entry.StartTime.Format(csvDateLayout),
			entry.StartTime.Format(csvTimeLayout),
			endTime,
			FormatDurationDecimal(entry.DurationSeconds()),
			entry.ProjectName,
			entry.TaskName,
			entry.Description,
			billable,
		})
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
