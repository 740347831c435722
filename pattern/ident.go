package pattern

import (
	"regexp"
	"strings"
)

// lineIDPattern matches the LINE ID shape: letter-initial, 4-20 characters
// from [A-Za-z0-9._].
var lineIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._]{3,19}$`)

// lineIDStopList suppresses false positives from ordinary English words
// that happen to match the LINE ID shape. Known to be incomplete; it
// covers words that showed up in real messages, not the dictionary.
var lineIDStopList = map[string]struct{}{
	"hello": {}, "thanks": {}, "thank": {}, "please": {}, "sorry": {},
	"welcome": {}, "morning": {}, "night": {}, "today": {}, "tomorrow": {},
	"message": {}, "driver": {}, "parking": {}, "card": {}, "look": {},
	"this": {}, "that": {}, "with": {}, "your": {}, "have": {},
	"what": {}, "when": {}, "where": {}, "good": {}, "nice": {},
	"shopping": {}, "online": {}, "phone": {}, "number": {},
}

// IsValidLineID reports whether s has the LINE ID shape and is not a
// stop-listed English word.
func IsValidLineID(s string) bool {
	if !lineIDPattern.MatchString(s) {
		return false
	}
	_, stopped := lineIDStopList[strings.ToLower(s)]
	return !stopped
}

// taiwanIDShape matches the national ID shape: one letter, 1 or 2, then
// eight digits. Shape alone is not enough; ValidateTaiwanID runs the
// checksum.
var taiwanIDShape = regexp.MustCompile(`(?i)[a-z][12]\d{8}`)

// taiwanIDLetterValues maps the leading letter to its two-digit value per
// the household registration coding table.
var taiwanIDLetterValues = map[byte]int{
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16,
	'H': 17, 'I': 34, 'J': 18, 'K': 19, 'L': 20, 'M': 21, 'N': 22,
	'O': 35, 'P': 23, 'Q': 24, 'R': 25, 'S': 26, 'T': 27, 'U': 28,
	'V': 29, 'W': 32, 'X': 30, 'Y': 31, 'Z': 33,
}

// IsValidTaiwanID reports whether s is a checksum-valid Taiwan national
// ID. The leading letter maps to a two-digit value; the weighted digit sum
// must be divisible by 10.
func IsValidTaiwanID(s string) bool {
	if len(s) != 10 {
		return false
	}
	s = strings.ToUpper(s)

	letterValue, ok := taiwanIDLetterValues[s[0]]
	if !ok {
		return false
	}
	if s[1] != '1' && s[1] != '2' {
		return false
	}

	sum := letterValue/10 + (letterValue%10)*9
	weights := []int{8, 7, 6, 5, 4, 3, 2, 1, 1}
	for i := 0; i < 9; i++ {
		d := s[i+1]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * weights[i]
	}

	return sum%10 == 0
}

// FindTaiwanIDCandidates returns every national-ID-shaped run in text.
// Callers must still validate each candidate with IsValidTaiwanID.
func FindTaiwanIDCandidates(text string) []string {
	return taiwanIDShape.FindAllString(text, -1)
}

// IsValidCreditCard reports whether s is a 16-digit run passing the Luhn
// checksum.
func IsValidCreditCard(s string) bool {
	if len(s) != 16 {
		return false
	}

	sum := 0
	for i := 0; i < 16; i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return false
		}
		n := int(d - '0')
		// Double every second digit from the right.
		if i%2 == 0 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}

	return sum%10 == 0
}
