package usecase

import (
	"regexp"
	"strings"
	"unicode"
)

const countryCode = "265"

// Malawi mobile subscriber numbers, with optional trunk or country prefix.
var phonePattern = regexp.MustCompile(`^(0|265)?(88|99|98|77)\d{7}$`)

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone strips formatting and returns the number as
// 265XXXXXXXXX. ok is false when the number is not a valid subscriber
// number.
func NormalizePhone(raw string) (string, bool) {
	d := digitsOnly(raw)
	if !phonePattern.MatchString(d) {
		return "", false
	}
	switch {
	case strings.HasPrefix(d, countryCode) && len(d) == len(countryCode)+9:
		return d, true
	case strings.HasPrefix(d, "0"):
		return countryCode + d[1:], true
	default:
		return countryCode + d, true
	}
}

// MaskPhone hides the middle digits for logs.
func MaskPhone(phone string) string {
	if len(phone) < 7 {
		return "***"
	}
	return phone[:3] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-3:]
}
