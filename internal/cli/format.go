// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatAmount rounds to a whole unit and prefixes the currency code.
// e.g., ("KES", 1350000) -> "KES 1,350,000", ("USD", -12.6) -> "−USD 13"
func FormatAmount(currency string, amount float64) string {
	n := int64(math.Round(math.Abs(amount)))
	s := FormatNumber(n)
	if currency != "" {
		s = currency + " " + s
	}
	if amount < 0 && n != 0 {
		return "−" + s
	}
	return s
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(pct)))
}

// FormatMonth turns "2025-03" into "Mar 2025". Unparseable keys pass through.
func FormatMonth(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return key
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return key
	}
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	return months[m-1] + " " + parts[0]
}
