package utils

import (
	"regexp"
)

// phonePattern accepts Zambian mobile numbers with optional country code
// (+26/26) and optional leading zero.
var phonePattern = regexp.MustCompile(`^(?:\+?26)?0?(95|96|97|75|76|77)\d{7}$`)

// nonDigits matches everything that is not a decimal digit
var nonDigits = regexp.MustCompile(`[^0-9]`)

// ValidatePhoneNumber reports whether the input matches the registration
// phone-number policy.
func ValidatePhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// NormalizePhoneNumber strips non-digit characters and returns the last 9
// digits, the canonical matching key. Leading zeros and country-code
// variants of the same subscriber normalize to the same key.
func NormalizePhoneNumber(phone string) string {
	clean := nonDigits.ReplaceAllString(phone, "")
	if len(clean) <= 9 {
		return clean
	}
	return clean[len(clean)-9:]
}
