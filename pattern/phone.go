// Package pattern provides stateless predicates and regular expressions
// for structured identifiers: phone numbers, LINE IDs, Taiwan national
// IDs, credit cards, crypto wallet addresses, emails, and URLs. Detectors
// compose these with dictionary and context checks rather than relying on
// a regex alone.
//
// Every pattern is RE2-compatible and linear in input length; there is no
// backtracking an attacker-supplied text could blow up.
package pattern

import (
	"regexp"
	"strings"
)

// taiwanMobilePattern matches the canonical Taiwan mobile shape inside
// normalized text (09 followed by 8 digits).
var taiwanMobilePattern = regexp.MustCompile(`09\d{8}`)

// IsPossiblePhone reports whether a digit run looks like a phone number.
// The rules, in order:
//   - reject if length is outside [7, 12] or every digit is the same
//   - Taiwan mobile: 09 + 8 digits
//   - Taiwan landline: leading 0 area code + 7-8 digits (9-10 total)
//   - international: 886 (with or without a stripped +) + 9 digits
//     starting with 9
//   - fallback: any run of 8 or more digits
func IsPossiblePhone(digits string) bool {
	n := len(digits)
	if n < 7 || n > 12 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}

	// Taiwan mobile: 09xxxxxxxx
	if n == 10 && strings.HasPrefix(digits, "09") {
		return true
	}

	// Taiwan landline: 0X + 7-8 digits
	if (n == 9 || n == 10) && digits[0] == '0' && digits[1] != '0' {
		return true
	}

	// International: 886 + 9xxxxxxxx
	if n == 12 && strings.HasPrefix(digits, "8869") {
		return true
	}

	// Fallback: long digit runs are suspicious enough on their own.
	return n >= 8
}

// FindTaiwanMobile returns every canonical Taiwan mobile match in
// normalized text.
func FindTaiwanMobile(normalized string) []string {
	return taiwanMobilePattern.FindAllString(normalized, -1)
}

// IsRepeatedDigitRun reports whether the run consists of one repeated
// digit, e.g. "00000000". Such runs are never phone or account numbers.
func IsRepeatedDigitRun(digits string) bool {
	return allSameDigit(digits)
}

// allSameDigit reports whether the run consists of one repeated digit.
func allSameDigit(digits string) bool {
	if digits == "" {
		return false
	}
	first := digits[0]
	for i := 1; i < len(digits); i++ {
		if digits[i] != first {
			return false
		}
	}
	return true
}
