// Package normalize converts raw cell text from heterogeneous exports into
// typed values. Source files come from many billing tools, so numbers carry
// thousands separators and dates arrive in a dozen layouts; every function
// here is best-effort and never returns an error to the caller.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Instant layout used throughout the import format: midnight-anchored
// ISO-8601 with millisecond precision and a literal Z suffix.
const instantLayout = "2006-01-02T15:04:05.000Z"

// dateLayouts are tried in this exact order. The order is a compatibility
// constant: the first layout that fully matches wins, even when a later one
// is more specific.
var dateLayouts = []string{
	"2-Jan-2006",     // 07-Apr-2025
	"2/Jan/2006",     // 08/Apr/2025
	"2-January-2006", // 07-April-2025
	"2/January/2006", // 08/April/2025
	"2-1-2006",       // 07-04-2025
	"2/1/2006",       // 07/04/2025
	"2006-1-2",       // 2025-04-07
	"2.1.2006",       // 07.04.2025
	"2 Jan 2006",     // 07 Apr 2025
	"2 January 2006", // 07 April 2025
}

var alphaRun = regexp.MustCompile(`[A-Za-z]+`)

// Text trims surrounding whitespace. Absent input yields the empty string.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}

// Decimal parses locale-formatted numeric text, stripping thousands
// separators and internal spaces. Any parse failure yields 0.
func Decimal(raw string) float64 {
	v, _ := DecimalOK(raw)
	return v
}

// DecimalOK is Decimal with an explicit success flag, for callers that keep
// a field default instead of the zero value when a cell is malformed.
func DecimalOK(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Integer parses via decimal-then-truncate, so "60.00" becomes 60.
// Failure yields 0.
func Integer(raw string) int {
	v, _ := IntegerOK(raw)
	return v
}

// IntegerOK is Integer with an explicit success flag.
func IntegerOK(raw string) (int, bool) {
	v, ok := DecimalOK(raw)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// Date parses a date cell against the known layouts and returns it at
// midnight in the instant format. When nothing matches (or the cell is
// empty) it falls back to the current wall-clock time and emits a warning
// on the given logger; a bad date is a diagnostic, not an error.
func Date(raw string, log zerolog.Logger) string {
	if t, ok := ParseDate(raw); ok {
		return t.Format(instantLayout)
	}
	if strings.TrimSpace(raw) != "" {
		log.Warn().Str("value", raw).Msg("could not parse date, using current date")
	}
	return Instant(time.Now())
}

// ParseDate tries the layouts in priority order. Month names are matched
// case-insensitively.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	// Canonicalize month-name casing ("APR", "apr" -> "Apr") so the fixed
	// layouts match regardless of how the export tool cased them.
	s = alphaRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
	})
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Instant formats a time in the import format's instant layout.
func Instant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// Round2 rounds to two decimal places. The invoice aggregator applies it
// after every accumulation so floating error never compounds past one cent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
