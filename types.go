package contentfilter

// Violation represents one detected problem in a text.
type Violation struct {
	Kind     Kind     `json:"kind"`     // Category of the violation
	Severity Severity `json:"severity"` // low/medium/high
	Matched  string   `json:"matched"`  // Substring that triggered the rule
	Message  string   `json:"message"`  // Canonical message for the kind
}

// NewViolation creates a violation for a kind, drawing the message from
// KindRegistry. Matched must be non-empty; detectors always pass the
// triggering substring or keyword.
func NewViolation(kind Kind, severity Severity, matched string) Violation {
	return Violation{
		Kind:     kind,
		Severity: severity,
		Matched:  matched,
		Message:  MessageFor(kind),
	}
}

// ViolationList is a collection of violations.
type ViolationList []Violation

// HighestSeverity returns the highest severity in the list, or zero when
// the list is empty.
func (vl ViolationList) HighestSeverity() Severity {
	var highest Severity
	for _, v := range vl {
		if v.Severity > highest {
			highest = v.Severity
		}
	}
	return highest
}

// HasKind checks if any violation has the given kind.
func (vl ViolationList) HasKind(kind Kind) bool {
	for _, v := range vl {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Kinds returns all unique kinds in the list, in first-seen order.
func (vl ViolationList) Kinds() []Kind {
	seen := make(map[Kind]bool)
	var kinds []Kind
	for _, v := range vl {
		if !seen[v.Kind] {
			seen[v.Kind] = true
			kinds = append(kinds, v.Kind)
		}
	}
	return kinds
}

// Filter returns violations matching the given predicate.
func (vl ViolationList) Filter(predicate func(Violation) bool) ViolationList {
	var result ViolationList
	for _, v := range vl {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterOptions configures a single filter call. The zero value is not
// useful; use DefaultFilterOptions as a starting point.
type FilterOptions struct {
	// CheckContact enables the contact-information detector.
	CheckContact bool

	// CheckProfanity enables the profanity/threat detector.
	CheckProfanity bool

	// CheckScam enables the scam/sensitive-identifier detector.
	CheckScam bool

	// MinSeverity drops violations below this severity from the result.
	MinSeverity Severity

	// EnableHarassment turns on harassment-term matching. Off by default:
	// the term list has a high false-positive rate on ordinary driving
	// complaints.
	EnableHarassment bool

	// EnableScamKeywords turns on scam keyword-density matching (three or
	// more distinct hits). Off by default for the same reason.
	EnableScamKeywords bool
}

// DefaultFilterOptions returns the default options: all detectors on,
// minimum severity low, latent detectors off.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		CheckContact:   true,
		CheckProfanity: true,
		CheckScam:      true,
		MinSeverity:    DefaultMinSeverity,
	}
}

// ContentFilterResult is the outcome of filtering one text. It is fully
// determined by (text, options).
type ContentFilterResult struct {
	IsValid        bool          `json:"is_valid"`   // True iff Violations is empty
	Violations     ViolationList `json:"violations"` // Most severe first, deduplicated
	NormalizedText string        `json:"normalized_text"`
	OriginalText   string        `json:"original_text"`
}

// FirstMessage returns the message of the most severe violation, or the
// empty string when the text is valid.
func (r ContentFilterResult) FirstMessage() string {
	if len(r.Violations) == 0 {
		return ""
	}
	return r.Violations[0].Message
}
