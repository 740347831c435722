package pattern

import (
	"regexp"
	"strings"
)

var (
	// emailPattern runs on raw text: the "@" and dots survive there, and
	// punctuation stripping would destroy the shape in normalized text.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// schemeURLPattern matches explicit http/https URLs.
	schemeURLPattern = regexp.MustCompile(`(?i)https?://[^\s]+`)

	// wwwURLPattern matches bare www. hosts.
	wwwURLPattern = regexp.MustCompile(`(?i)\bwww\.[A-Za-z0-9\-]+\.[A-Za-z]{2,}(?:/[^\s]*)?`)

	// tldURLPattern matches bare domains on common TLDs. Restricting to a
	// known TLD list keeps decimal numbers and version strings out.
	tldURLPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9\-]+\.(?:com|net|org|tw|cc|co|me|io|gg|info|xyz|shop|site|club|online|top|ly|app)\b(?:/[^\s]*)?`)

	// shortenerPattern matches known URL shorteners with the dot optional,
	// so it still fires on separator-stripped normalized text
	// ("reurlcc/abc123").
	shortenerPattern = regexp.MustCompile(`(?i)\b(?:bit\.?ly|goo\.?gl|tinyurl(?:\.?com)?|reurl\.?cc|lin\.?ee|pse\.?is|t\.?cn|is\.?gd)(?:/[A-Za-z0-9]+)?`)

	// socialHandlePattern matches an @handle token. "@" is neither a
	// whitespace nor separator character, so it survives normalization.
	socialHandlePattern = regexp.MustCompile(`@[A-Za-z0-9_.]{2,30}`)
)

// FindEmails returns every email-shaped substring in raw text.
func FindEmails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// FindURLs returns every URL-shaped substring across both the original and
// normalized forms of a text, merged case-insensitively without
// duplicates. Scheme, www, and TLD shapes only survive in the original;
// the shortener shape also fires on normalized text where the dots have
// been stripped.
func FindURLs(original, normalized string) []string {
	seen := make(map[string]struct{})
	var urls []string

	add := func(matches []string) {
		for _, m := range matches {
			key := strings.ToLower(m)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			urls = append(urls, m)
		}
	}

	add(schemeURLPattern.FindAllString(original, -1))
	add(wwwURLPattern.FindAllString(original, -1))
	add(tldURLPattern.FindAllString(original, -1))
	add(shortenerPattern.FindAllString(original, -1))
	add(shortenerPattern.FindAllString(normalized, -1))

	return urls
}

// FindSocialHandle returns the first @handle token in text.
func FindSocialHandle(text string) (string, bool) {
	m := socialHandlePattern.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
