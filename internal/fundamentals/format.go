package fundamentals

import (
	"fmt"
	"math"
)

// NA is the display marker for an undefined value. It is distinct from zero:
// a metric that is genuinely 0 renders as 0, only absent data renders as NA.
const NA = "N/A"

// Billions renders a monetary value in billions with two decimals.
func Billions(v float64, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%.2fB", v/1e9)
}

// Decimal2 renders a ratio or price with two decimals.
func Decimal2(v float64, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%.2f", v)
}

// Decimal4 renders a yield with four decimals.
func Decimal4(v float64, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%.4f", v)
}

// Percent2 renders a fractional rate (0.25 → "25.00%").
func Percent2(v float64, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%.2f%%", v*100.0)
}

// PercentPoints2 renders a value already expressed in percent (20 → "20.00%").
func PercentPoints2(v float64, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Count renders an integer count.
func Count(v int, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%d", v)
}

// Indicator renders a technical-indicator value, treating NaN as undefined.
func Indicator(v float64) string {
	if math.IsNaN(v) {
		return NA
	}
	return fmt.Sprintf("%.2f", v)
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
