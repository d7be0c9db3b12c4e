package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeFlag(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"rfc3339", "2025-03-10T09:00:00Z", true},
		{"date and minutes", "2025-03-10 09:00", true},
		{"date with seconds", "2025-03-10 09:00:30", true},
		{"bare date", "2025-03-10", true},
		{"garbage", "yesterday-ish", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseTimeFlag(tc.value)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseTimeFlag_RFC3339IsUTC(t *testing.T) {
	got, err := parseTimeFlag("2025-03-10T09:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
}

func TestParseRangeFlags_BareDateCoversWholeDay(t *testing.T) {
	start, end, err := parseRangeFlags("2025-03-01", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour-time.Second, end.Sub(start))
}

func TestParseRangeFlags_RejectsInvertedRange(t *testing.T) {
	_, _, err := parseRangeFlags("2025-03-10T12:00:00Z", "2025-03-10T09:00:00Z")
	assert.Error(t, err)
}
