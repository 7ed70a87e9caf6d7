// Package format holds display formatting helpers for the storefront.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price renders a whole-currency amount with thousands separators and
// the "won" suffix, e.g. 28000 -> "28,000 won".
func Price(amount decimal.Decimal) string {
	return groupDigits(amount.Round(0).String()) + " won"
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Date renders a calendar date as "Jan 1, 2026".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DateRange renders "Jan 1, 2026 ~ Jan 31, 2026" style ranges.
func DateRange(start, end time.Time) string {
	return Date(start) + " ~ " + Date(end)
}

// PhoneNumber hyphenates an 11-digit mobile number as 3-4-4. Anything
// else is returned as given.
func PhoneNumber(phone string) string {
	cleaned := digitsOnly(phone)
	if len(cleaned) != 11 {
		return phone
	}
	return cleaned[:3] + "-" + cleaned[3:7] + "-" + cleaned[7:]
}

// ZipCode strips non-digits and caps at five characters.
func ZipCode(zip string) string {
	cleaned := digitsOnly(zip)
	if len(cleaned) > 5 {
		return cleaned[:5]
	}
	return cleaned
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate cuts text to maxLen runes with a trailing ellipsis.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// Rating renders a star rating with one decimal place.
func Rating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

// ReviewCount compacts counts of 1000 or more to "1.2k" style.
func ReviewCount(count int) string {
	if count >= 1000 {
		return fmt.Sprintf("%.1fk", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}
