package utils

import "strings"

// MergeStrategy defines how multiple user-authored fields are merged into
// a single scan.
type MergeStrategy struct {
	MaxLen    int    // Maximum length for merged text, in bytes
	Separator string // Separator between merged parts
}

// MergedText represents the result of merging multiple texts.
type MergedText struct {
	Merged string   // The merged text
	Parts  []string // Original parts
}

// MergeTexts merges multiple text parts into a single text for one filter
// pass. Returns false when the parts do not fit within the strategy's
// MaxLen; the caller then falls back to scanning each part individually.
func MergeTexts(parts []string, strategy MergeStrategy) (MergedText, bool) {
	if len(parts) == 0 {
		return MergedText{}, false
	}

	if len(parts) == 1 {
		if strategy.MaxLen > 0 && len(parts[0]) > strategy.MaxLen {
			return MergedText{}, false
		}
		return MergedText{Merged: parts[0], Parts: parts}, true
	}

	totalLen := 0
	for i, p := range parts {
		totalLen += len(p)
		if i > 0 {
			totalLen += len(strategy.Separator)
		}
	}
	if strategy.MaxLen > 0 && totalLen > strategy.MaxLen {
		return MergedText{}, false
	}

	var b strings.Builder
	b.Grow(totalLen)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(strategy.Separator)
		}
		b.WriteString(p)
	}

	return MergedText{Merged: b.String(), Parts: parts}, true
}
