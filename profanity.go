package contentfilter

import (
	"strings"

	"github.com/carnote/contentfilter/dict"
)

// ProfanityDetector finds threats, profanity, and discriminatory language.
// Threats are checked first and a single hit is enough; profanity checks
// the small high-severity tier before scanning the general list.
type ProfanityDetector struct {
	// Words is the dictionary snapshot for this call.
	Words *dict.Snapshot

	// IncludeHarassment enables the harassment term list. The capability
	// is wired but ships disabled: the list false-positives heavily on
	// ordinary messages between strangers.
	IncludeHarassment bool
}

// Name returns the detector name.
func (ProfanityDetector) Name() string { return "profanity" }

// Detect scans normalized text against the abusive-language lists.
func (d ProfanityDetector) Detect(original, normalized string) ViolationList {
	var violations ViolationList

	// Threats first. One match blocks; no need to enumerate the rest.
	for _, w := range d.Words.Threats() {
		if strings.Contains(normalized, w) {
			violations = append(violations, NewViolation(KindThreat, SeverityHigh, w))
			break
		}
	}

	// High-tier profanity short-circuits the general scan: an extreme
	// slur already blocks, and reporting its embedded fragments as extra
	// violations adds nothing.
	highHit := false
	for _, w := range d.Words.ProfanityHigh() {
		if strings.Contains(normalized, w) {
			violations = append(violations, NewViolation(KindProfanity, SeverityHigh, w))
			highHit = true
			break
		}
	}

	if !highHit {
		for _, w := range d.Words.Profanity() {
			if !strings.Contains(normalized, w) {
				continue
			}
			severity := SeverityLow
			switch {
			case d.Words.InHighTier(w):
				severity = SeverityHigh
			case d.Words.InMediumTier(w):
				severity = SeverityMedium
			}
			violations = append(violations, NewViolation(KindProfanity, severity, w))
		}
	}

	// Discrimination: a single keyword hit is enough.
	for _, w := range d.Words.Discrimination() {
		if strings.Contains(normalized, w) {
			violations = append(violations, NewViolation(KindDiscrimination, SeverityMedium, w))
			break
		}
	}

	if d.IncludeHarassment {
		for _, w := range d.Words.Harassment() {
			if strings.Contains(normalized, w) {
				violations = append(violations, NewViolation(KindHarassment, SeverityMedium, w))
				break
			}
		}
	}

	return violations
}
