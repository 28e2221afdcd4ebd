// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a whole-currency amount with the given symbol.
// e.g., ("₹", 128000) -> "₹128,000"
func FormatMoney(symbol string, amount int64) string {
	if amount < 0 {
		return "-" + FormatMoney(symbol, -amount)
	}
	return symbol + FormatNumber(amount)
}

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

// FormatPercent formats a percentage value with two decimals.
// e.g., 29.77 -> "29.77%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatDays formats a day count for the recommendation views.
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatDate formats a date the way the dashboard shows due dates.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// MaskCardNumber renders the masked PAN shown on card widgets.
// e.g., "4412" -> "**** **** **** 4412"
func MaskCardNumber(lastFour string) string {
	if lastFour == "" {
		lastFour = "····"
	}
	return "**** **** **** " + lastFour
}

// OrdinalDay formats a day-of-month with its English ordinal suffix.
// e.g., 21 -> "21st"
func OrdinalDay(day int) string {
	suffix := "th"
	switch day % 10 {
	case 1:
		if day%100 != 11 {
			suffix = "st"
		}
	case 2:
		if day%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if day%100 != 13 {
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}
