package models

import (
	"fmt"
	"strings"
)

// FormatDuration renders minutes as "1h 30m", "45m" or "2h".
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	var parts []string
	if h != 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m != 0 || h == 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	return strings.Join(parts, " ")
}

// FormatRange renders a duration range, collapsing shared units
// ("30 - 45m", "1 - 2h") and falling back to "1h 30m - 2h".
func FormatRange(low, high int) string {
	if low == high {
		return FormatDuration(low)
	}

	h1, h2 := low/60, high/60
	m1, m2 := low%60, high%60

	if m1 != 0 && m2 != 0 && h1 == 0 && h2 == 0 {
		return fmt.Sprintf("%d - %dm", m1, m2)
	}
	if h1 != 0 && h2 != 0 && m1 == 0 && m2 == 0 {
		return fmt.Sprintf("%d - %dh", h1, h2)
	}
	return FormatDuration(low) + " - " + FormatDuration(high)
}

// Label returns the display label of the range, with "+" on the sentinel.
func (r Range) Label() string {
	s := FormatRange(r.Low(), r.High())
	if r.High() >= MaxDuration {
		s += "+"
	}
	return s
}
