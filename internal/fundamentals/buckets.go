package fundamentals

import (
	"strconv"
	"strings"
)

// Categorical presentation helpers. These operate on the already-formatted
// display strings, so they tolerate "N/A", empty cells and junk input by
// answering "N/A" rather than failing.

// UpsideBucket classifies an upside percent string such as "6.16%".
func UpsideBucket(upside string) string {
	num, ok := parsePercent(upside)
	if !ok {
		return NA
	}
	switch {
	case num >= 0.10:
		return "High (>10%)"
	case num >= 0:
		return "Medium (0–10%)"
	default:
		return "Negative"
	}
}

// ESGCategory classifies a manual ESG score string on a 0-100 scale.
func ESGCategory(score string) string {
	v, ok := parseNumber(score)
	if !ok {
		return NA
	}
	switch {
	case v >= 60:
		return "Good (≥60)"
	case v >= 40:
		return "Average (40–59)"
	default:
		return "Poor (<40)"
	}
}

// RSIStatus classifies a formatted RSI(14) value.
func RSIStatus(rsi string) string {
	v, ok := parseNumber(rsi)
	if !ok {
		return NA
	}
	switch {
	case v > 70:
		return "Overbought (>70)"
	case v < 30:
		return "Oversold (<30)"
	default:
		return "Neutral"
	}
}

// parsePercent converts "12.5%" to the fraction 0.125.
func parsePercent(s string) (float64, bool) {
	v, ok := parseNumber(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if !ok {
		return 0, false
	}
	return v / 100.0, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NA {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
