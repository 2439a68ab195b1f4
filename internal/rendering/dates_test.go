package rendering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Present"},
		{"2020-01", "Jan 2020"},
		{"2018-12-15", "Dec 2018"},
		{"2021-07-01T00:00:00Z", "Jul 2021"},
		{"sometime", "sometime"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", "2022-03", true))
	assert.Equal(t, "Jan 2020 - Mar 2022", DateRange("2020-01", "2022-03", false))
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", "", false))
}

func TestDuration(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"no start", "", "2024-01", ""},
		{"bad start", "soon", "", ""},
		{"same month", "2024-03", "2024-03", "0 months"},
		{"one month", "2024-03", "2024-04", "1 month"},
		{"months", "2023-10", "2024-03", "5 months"},
		{"one year", "2022-03", "2023-03", "1 year"},
		{"years", "2019-03", "2023-03", "4 years"},
		{"mixed", "2021-01", "2022-04", "1 yr 3 mo"},
		{"until now", "2023-06", "", "1 year"},
		{"end before start", "2024-05", "2023-01", "0 months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.start, tt.end, now))
		})
	}
}
