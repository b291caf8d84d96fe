// Package formatting converts between human-readable strings and values:
// byte sizes for configuration limits and truncated excerpts for display.
package formatting

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a byte count using base-1024 units with the given precision.
func FormatBytes(n int64, precision int) string {
	if n <= 0 {
		return "0 B"
	}
	precision = max(precision, 0)

	i := min(int(math.Floor(math.Log(float64(n))/math.Log(1024))), len(units)-1)
	size := float64(n) / math.Pow(1024, float64(i))

	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[i]
}

// ParseBytes parses sizes such as "512", "64KB", or "1.5 mb" into a byte count.
// A bare number is bytes; units are base-1024 and case-insensitive.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})

	number, unit := s, ""
	if split >= 0 {
		number, unit = s[:split], strings.ToUpper(strings.TrimSpace(s[split:]))
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}

	if unit == "" {
		return int64(value), nil
	}

	idx := slices.Index(units, unit)
	if idx == -1 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}

	return int64(value * math.Pow(1024, float64(idx))), nil
}
