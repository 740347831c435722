package contentfilter

import (
	"sort"
	"strings"

	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/normalize"
)

// Options configures an Engine.
type Options struct {
	// Words supplies the swappable word lists. Nil means the built-in
	// defaults. A reloader may swap snapshots through the holder at any
	// time; each filter call reads one consistent snapshot.
	Words *dict.Holder
}

// Engine runs the detector pipeline. It is safe for concurrent use: a call
// only reads an immutable dictionary snapshot and its own locals.
type Engine struct {
	words *dict.Holder
}

// New creates an engine.
func New(opts Options) *Engine {
	if opts.Words == nil {
		opts.Words = dict.NewHolder(dict.DefaultSnapshot())
	}
	return &Engine{words: opts.Words}
}

// Words returns the dictionary holder, for wiring a reloader.
func (e *Engine) Words() *dict.Holder {
	return e.words
}

// FilterContent normalizes the text once, fans it out to the enabled
// detectors, and post-processes the union: drop below-threshold
// violations, deduplicate by (kind, lowercased match) keeping the first
// occurrence, and stable-sort by severity descending. The result is fully
// determined by (text, options) regardless of detector order.
func (e *Engine) FilterContent(text string, opts FilterOptions) ContentFilterResult {
	normalized := normalize.Normalize(text, normalize.DefaultOptions())
	snap := e.words.Load()

	var all ViolationList
	if opts.CheckContact {
		all = append(all, ContactDetector{}.Detect(text, normalized)...)
	}
	if opts.CheckProfanity {
		d := ProfanityDetector{Words: snap, IncludeHarassment: opts.EnableHarassment}
		all = append(all, d.Detect(text, normalized)...)
	}
	if opts.CheckScam {
		d := ScamDetector{Words: snap, IncludeKeywordDensity: opts.EnableScamKeywords}
		all = append(all, d.Detect(text, normalized)...)
	}

	violations := finalize(all, opts.MinSeverity)

	return ContentFilterResult{
		IsValid:        len(violations) == 0,
		Violations:     violations,
		NormalizedText: normalized,
		OriginalText:   text,
	}
}

// QuickFilter is the keystroke-level preset: only high-severity violations
// surface, so the user is not nagged about weak signals while typing.
func (e *Engine) QuickFilter(text string) ContentFilterResult {
	opts := DefaultFilterOptions()
	opts.MinSeverity = SeverityHigh
	return e.FilterContent(text, opts)
}

// FullFilter is the submit-time preset: every severity surfaces.
func (e *Engine) FullFilter(text string) ContentFilterResult {
	opts := DefaultFilterOptions()
	opts.MinSeverity = SeverityLow
	return e.FilterContent(text, opts)
}

// HasInappropriateContent reports whether a full filter pass finds any
// violation.
func (e *Engine) HasInappropriateContent(text string) bool {
	return !e.FullFilter(text).IsValid
}

// FirstViolationMessage returns the message of the most severe violation
// found by a full filter pass, and false when the text is clean.
func (e *Engine) FirstViolationMessage(text string) (string, bool) {
	result := e.FullFilter(text)
	if result.IsValid {
		return "", false
	}
	return result.Violations[0].Message, true
}

type dedupKey struct {
	kind    Kind
	matched string
}

// finalize applies the severity threshold, deduplicates, and orders the
// violations most severe first. The sort is stable so equal-severity
// violations keep their detector emission order.
func finalize(all ViolationList, minSeverity Severity) ViolationList {
	if minSeverity == 0 {
		minSeverity = DefaultMinSeverity
	}

	seen := make(map[dedupKey]struct{}, len(all))
	var violations ViolationList
	for _, v := range all {
		if v.Severity < minSeverity {
			continue
		}
		key := dedupKey{kind: v.Kind, matched: strings.ToLower(v.Matched)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		violations = append(violations, v)
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Severity > violations[j].Severity
	})

	return violations
}

// Package-level convenience API backed by an engine with the built-in
// word lists.

var defaultEngine = New(Options{})

// Default returns the package-level engine.
func Default() *Engine { return defaultEngine }

// Normalize canonicalizes text with every normalization stage enabled.
func Normalize(text string) string {
	return normalize.Normalize(text, normalize.DefaultOptions())
}

// FilterContent filters text with the default engine.
func FilterContent(text string, opts FilterOptions) ContentFilterResult {
	return defaultEngine.FilterContent(text, opts)
}

// QuickFilter filters text with the default engine at the high-severity
// threshold.
func QuickFilter(text string) ContentFilterResult {
	return defaultEngine.QuickFilter(text)
}

// FullFilter filters text with the default engine at the low-severity
// threshold.
func FullFilter(text string) ContentFilterResult {
	return defaultEngine.FullFilter(text)
}

// HasInappropriateContent reports whether text contains any violation.
func HasInappropriateContent(text string) bool {
	return defaultEngine.HasInappropriateContent(text)
}

// FirstViolationMessage returns the most severe violation's message.
func FirstViolationMessage(text string) (string, bool) {
	return defaultEngine.FirstViolationMessage(text)
}
