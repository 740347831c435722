package contentfilter

import (
	"testing"

	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/normalize"
)

func runProfanity(text string, includeHarassment bool) ViolationList {
	normalized := normalize.Normalize(text, normalize.DefaultOptions())
	d := ProfanityDetector{Words: dict.DefaultSnapshot(), IncludeHarassment: includeHarassment}
	return d.Detect(text, normalized)
}

func TestProfanityDetector_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		severity Severity
	}{
		{"extreme slur", "幹你娘", SeverityHigh},
		{"common swearing", "靠北欸你", SeverityMedium},
		{"name calling", "你這個笨蛋", SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runProfanity(tt.text, false)
			if !violations.HasKind(KindProfanity) {
				t.Fatalf("no profanity violation in %q: %+v", tt.text, violations)
			}
			found := violations.Filter(func(v Violation) bool { return v.Kind == KindProfanity })
			if got := found.HighestSeverity(); got != tt.severity {
				t.Errorf("severity = %s, want %s", got, tt.severity)
			}
		})
	}
}

func TestProfanityDetector_HighTierShortCircuits(t *testing.T) {
	// "幹你娘" contains "幹"; the high-tier hit must not be accompanied by
	// the embedded medium-tier fragment.
	violations := runProfanity("幹你娘", false)
	found := violations.Filter(func(v Violation) bool { return v.Kind == KindProfanity })
	if len(found) != 1 {
		t.Fatalf("got %d profanity violations, want 1: %+v", len(found), found)
	}
	if found[0].Severity != SeverityHigh {
		t.Errorf("severity = %s, want %s", found[0].Severity, SeverityHigh)
	}
}

func TestProfanityDetector_Threats(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"再亂停我就砸你車", true},
		{"信不信我找人處理你", true},
		{"等著瞧", true},
		{"車麻煩移一下", false},
	}

	for _, tt := range tests {
		violations := runProfanity(tt.text, false)
		if got := violations.HasKind(KindThreat); got != tt.want {
			t.Errorf("threat detection on %q = %v, want %v", tt.text, got, tt.want)
		}
	}

	// A single threat hit is enough; multiple threat words still yield one
	// violation.
	violations := runProfanity("砸你車 刮你車", false)
	found := violations.Filter(func(v Violation) bool { return v.Kind == KindThreat })
	if len(found) != 1 {
		t.Errorf("got %d threat violations, want 1: %+v", len(found), found)
	}
}

func TestProfanityDetector_EvasionVariants(t *testing.T) {
	// Separator and whitespace insertion must not defeat the scan.
	for _, text := range []string{"幹-你-娘", "幹 你 娘", "幹．你．娘"} {
		violations := runProfanity(text, false)
		found := violations.Filter(func(v Violation) bool { return v.Kind == KindProfanity })
		if got := found.HighestSeverity(); got != SeverityHigh {
			t.Errorf("evasion variant %q severity = %s, want %s", text, got, SeverityHigh)
		}
	}
}

func TestProfanityDetector_Discrimination(t *testing.T) {
	violations := runProfanity("死外勞", false)
	if !violations.HasKind(KindDiscrimination) {
		t.Fatalf("discrimination not detected: %+v", violations)
	}
	found := violations.Filter(func(v Violation) bool { return v.Kind == KindDiscrimination })
	if got := found.HighestSeverity(); got != SeverityMedium {
		t.Errorf("severity = %s, want %s", got, SeverityMedium)
	}
}

func TestProfanityDetector_HarassmentFlag(t *testing.T) {
	text := "你單身嗎"

	if runProfanity(text, false).HasKind(KindHarassment) {
		t.Error("harassment detected with the flag off")
	}

	violations := runProfanity(text, true)
	if !violations.HasKind(KindHarassment) {
		t.Fatalf("harassment not detected with the flag on: %+v", violations)
	}
	found := violations.Filter(func(v Violation) bool { return v.Kind == KindHarassment })
	if got := found.HighestSeverity(); got != SeverityMedium {
		t.Errorf("severity = %s, want %s", got, SeverityMedium)
	}
}

func TestProfanityDetector_CleanText(t *testing.T) {
	for _, text := range []string{"", "謝謝你幫我看車", "麻煩盡快移車，感謝"} {
		if violations := runProfanity(text, true); len(violations) != 0 {
			t.Errorf("clean text %q flagged: %+v", text, violations)
		}
	}
}
