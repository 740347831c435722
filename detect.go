package contentfilter

// Detector is the common contract for the rule sets. A detector receives
// the original text and its normalized form and emits zero or more
// violations. Implementations are pure and panic-free; they share no
// mutable state, so they can run concurrently and in any order relative to
// each other.
type Detector interface {
	// Name returns the detector name ("contact", "profanity", "scam").
	Name() string

	// Detect scans one text. It never mutates its inputs.
	Detect(original, normalized string) ViolationList
}
