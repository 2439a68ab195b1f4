package rendering

import (
	"fmt"
	"time"
)

// PresentLabel stands in for a missing end date.
const PresentLabel = "Present"

var dateLayouts = []string{"2006-01", "2006-01-02", time.RFC3339}

func parseMonth(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a "YYYY-MM" date as "Jan 2006". An empty date is
// PresentLabel; anything unparseable is returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return PresentLabel
	}
	t, ok := parseMonth(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2006")
}

// DateRange renders "start - end", with PresentLabel for current positions.
func DateRange(start, end string, current bool) string {
	if current {
		return FormatDate(start) + " - " + PresentLabel
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

// Duration describes the whole months between start and end ("1 month",
// "2 years", "1 yr 3 mo"). An empty end means now; an empty or unparseable
// start yields "".
func Duration(start, end string, now time.Time) string {
	if start == "" {
		return ""
	}
	from, ok := parseMonth(start)
	if !ok {
		return ""
	}
	to := now
	if end != "" {
		if to, ok = parseMonth(end); !ok {
			return ""
		}
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		months = 0
	}
	years, rem := months/12, months%12

	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return fmt.Sprintf("%d yr %d mo", years, rem)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
