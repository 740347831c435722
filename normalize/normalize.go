// Package normalize canonicalizes raw message text into a form where
// evasion tricks collapse away: homophone and alias substitution,
// whitespace and separator stripping, full-width and Chinese-numeral
// folding, and lowercasing. All functions are pure and total; unrecognized
// code points pass through untouched.
package normalize

import (
	"strings"

	"golang.org/x/text/width"
)

// Options toggles individual normalization stages. Stages always run in
// the fixed pipeline order; an option only controls whether its stage runs
// at all.
type Options struct {
	ReplaceWords     bool // Multi-character homophone/alias substitution
	RemoveWhitespace bool // Strip Unicode space and zero-width characters
	RemoveSeparators bool // Strip punctuation used to break up tokens
	ReplaceChars     bool // Width folding, Chinese numerals, homoglyphs
	Lowercase        bool
}

// DefaultOptions returns options with every stage enabled.
func DefaultOptions() Options {
	return Options{
		ReplaceWords:     true,
		RemoveWhitespace: true,
		RemoveSeparators: true,
		ReplaceChars:     true,
		Lowercase:        true,
	}
}

// LightOptions returns a cheaper variant for keystroke-level callers:
// whitespace stripping, width folding, and lowercasing only.
func LightOptions() Options {
	return Options{
		RemoveWhitespace: true,
		ReplaceChars:     true,
		Lowercase:        true,
	}
}

// Normalize canonicalizes text. The pipeline order is fixed: word
// substitution runs before whitespace removal because substitutions key on
// adjacent characters that stripping would otherwise fuse incorrectly, and
// separator removal runs before character substitution so that full-width
// separators are stripped rather than folded. Separator removal repeats
// after character substitution, keeping Normalize idempotent when folding
// produces a separator rune.
func Normalize(text string, opts Options) string {
	if text == "" {
		return ""
	}

	if opts.ReplaceWords {
		text = replaceWords(text)
	}
	if opts.RemoveWhitespace {
		text = removeRunes(text, whitespaceSet)
	}
	if opts.RemoveSeparators {
		text = removeRunes(text, separatorSet)
	}
	if opts.ReplaceChars {
		text = replaceChars(text)
		if opts.RemoveSeparators {
			// Width folding can surface separator runes that were
			// written in a width variant the first strip did not
			// cover, so strip again to keep the result stable.
			text = removeRunes(text, separatorSet)
		}
	}
	if opts.Lowercase {
		text = strings.ToLower(text)
	}

	return text
}

// NormalizeNumbers fully normalizes text and then strips everything that
// is not an ASCII digit. Used for phone and identifier extraction.
func NormalizeNumbers(text string) string {
	text = Normalize(text, DefaultOptions())

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractNumberSequences returns every maximal run of ASCII digits found
// after full normalization. "0 9 1 2 3 4 5 6 7 8" yields one sequence
// "0912345678".
func ExtractNumberSequences(text string) []string {
	text = Normalize(text, DefaultOptions())

	var sequences []string
	var current strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			sequences = append(sequences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sequences = append(sequences, current.String())
	}
	return sequences
}

// replaceWords applies the word substitution table with longest-match-first
// scanning from left to right.
func replaceWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		matched := false
		for _, key := range wordKeys {
			if strings.HasPrefix(text[i:], key) {
				b.WriteString(wordSubstitutions[key])
				i += len(key)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		b.WriteByte(text[i])
		i++
	}

	return b.String()
}

// removeRunes strips every rune present in the given set.
func removeRunes(text string, set map[rune]struct{}) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, drop := set[r]; drop {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// replaceChars folds full-width forms to their ASCII counterparts and then
// applies the single-character substitution table for Chinese numerals and
// cross-script homoglyphs.
func replaceChars(text string) string {
	text = width.Fold.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if sub, ok := charSubstitutions[r]; ok {
			b.WriteRune(sub)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
