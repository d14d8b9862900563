package matching

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizeEmail lowercases and trims an email address. Homeowner contact
// fields are stored normalized so lookups behave predictably.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone normalizes a phone number to E.164. Bare 10-digit numbers
// are assumed to be US.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}

	if len(digits) == 10 && !strings.HasPrefix(phone, "+") {
		return "+1" + digits
	}
	return "+" + digits
}
