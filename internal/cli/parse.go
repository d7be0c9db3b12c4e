package cli

import (
	"fmt"
	"time"
)

// Accepted layouts for user-supplied timestamps, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimeFlag parses a user-supplied timestamp. Layouts without a zone are
// interpreted in local time.
func parseTimeFlag(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (try 2006-01-02 15:04 or RFC3339)", value)
}

// parseRangeFlags parses --from/--to into an inclusive range. A bare date in
// --to extends to the end of that day so a day range covers the whole day.
func parseRangeFlags(from, to string) (time.Time, time.Time, error) {
	start, err := parseTimeFlag(from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	end, err := parseTimeFlag(to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	if isBareDate(to) {
		end = end.Add(24*time.Hour - time.Second)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %q precedes --from %q", to, from)
	}
	return start, end, nil
}

func isBareDate(value string) bool {
	_, err := time.ParseInLocation("2006-01-02", value, time.Local)
	return err == nil
}
