package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{900, "15m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
		{6300, "1h 45m"},
		{7325, "2h 2m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatDurationDecimal(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0.00"},
		{1200, "0.33"},
		{1800, "0.50"},
		{5400, "1.50"},
		{3600, "1.00"},
		{9000, "2.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDurationDecimal(tt.seconds), "seconds=%d", tt.seconds)
	}
}
