package contentfilter

import (
	"regexp"
	"strings"

	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/normalize"
	"github.com/carnote/contentfilter/pattern"
)

// ContactDetector finds attempts to move the conversation off-platform:
// phone numbers, LINE and WeChat IDs, emails, URLs, and social handles.
// Structured matches (an actual number or ID) are high severity; a bare
// keyword is only medium or low, so callers can threshold out the noisy
// partial signals while still blocking clear evasion.
type ContactDetector struct{}

// Name returns the detector name.
func (ContactDetector) Name() string { return "contact" }

// shortPlatformPattern matches the two-letter platform names with word
// boundaries on the original text; a bare Contains on normalized text
// would fire inside ordinary English words ("night" contains "ig").
var shortPlatformPattern = regexp.MustCompile(`(?i)\b(ig|fb)\b`)

// lineConnectives are filler runes between a LINE keyword and the ID
// ("line我abc123", "line是abc123").
var lineConnectives = map[rune]struct{}{
	'我': {}, '的': {}, '是': {}, '喔': {}, '唷': {}, '在': {}, '找': {},
}

// Detect runs the six contact sub-checks and unions their results.
func (d ContactDetector) Detect(original, normalized string) ViolationList {
	var violations ViolationList

	violations = append(violations, d.detectPhone(original, normalized)...)
	violations = append(violations, d.detectLine(normalized)...)
	violations = append(violations, d.detectWeChat(normalized)...)
	violations = append(violations, d.detectEmail(original)...)
	violations = append(violations, d.detectURL(original, normalized)...)
	violations = append(violations, d.detectSocial(original, normalized)...)

	// Generic "let's swap contact info" phrases only count when nothing
	// stronger matched.
	if len(violations) == 0 {
		violations = append(violations, d.detectExchangePhrase(normalized)...)
	}

	return violations
}

func (d ContactDetector) detectPhone(original, normalized string) ViolationList {
	var violations ViolationList

	for _, seq := range normalize.ExtractNumberSequences(original) {
		if len(seq) >= 8 && pattern.IsPossiblePhone(seq) {
			violations = append(violations, NewViolation(KindPhone, SeverityHigh, seq))
		}
	}

	// The canonical Taiwan mobile shape in normalized text catches what
	// the sequence extractor missed (digits embedded in longer runs
	// already rejected, alternative normalization paths).
	for _, m := range pattern.FindTaiwanMobile(normalized) {
		violations = append(violations, NewViolation(KindPhone, SeverityHigh, m))
	}

	return violations
}

func (d ContactDetector) detectLine(normalized string) ViolationList {
	if !strings.Contains(normalized, dict.LineKeyword) {
		return nil
	}

	// Try to pull a valid LINE ID token adjacent to each keyword
	// occurrence.
	search := normalized
	offset := 0
	for {
		idx := strings.Index(search, dict.LineKeyword)
		if idx < 0 {
			break
		}
		after := normalized[offset+idx+len(dict.LineKeyword):]
		if id, ok := extractLineID(after); ok {
			return ViolationList{NewViolation(KindLineID, SeverityHigh, id)}
		}
		offset += idx + len(dict.LineKeyword)
		search = normalized[offset:]
	}

	// Keyword without a structured ID: presence of intent still outweighs
	// the absence of an extractable token.
	return ViolationList{NewViolation(KindLineID, SeverityMedium, dict.LineKeyword)}
}

// extractLineID skips connective runes after a LINE keyword and collects
// the following ASCII token, accepting it only if it passes the LINE ID
// shape check.
func extractLineID(after string) (string, bool) {
	runes := []rune(after)
	i := 0
	for i < len(runes) {
		if _, skip := lineConnectives[runes[i]]; !skip {
			break
		}
		i++
	}
	// "lineid" prefix left over from "line id" / "line ID:" spellings.
	rest := string(runes[i:])
	rest = strings.TrimPrefix(rest, "id")

	var token strings.Builder
	for _, r := range rest {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			token.WriteRune(r)
			continue
		}
		break
	}

	id := token.String()
	if pattern.IsValidLineID(id) {
		return id, true
	}
	return "", false
}

func (d ContactDetector) detectWeChat(normalized string) ViolationList {
	for _, kw := range dict.WeChatKeywords {
		if strings.Contains(normalized, kw) {
			return ViolationList{NewViolation(KindWeChat, SeverityMedium, kw)}
		}
	}
	return nil
}

func (d ContactDetector) detectEmail(original string) ViolationList {
	var violations ViolationList
	for _, m := range pattern.FindEmails(original) {
		violations = append(violations, NewViolation(KindEmail, SeverityHigh, m))
	}
	return violations
}

func (d ContactDetector) detectURL(original, normalized string) ViolationList {
	var violations ViolationList
	for _, m := range pattern.FindURLs(original, normalized) {
		violations = append(violations, NewViolation(KindURL, SeverityHigh, m))
	}
	return violations
}

func (d ContactDetector) detectSocial(original, normalized string) ViolationList {
	for _, platform := range dict.SocialPlatforms {
		present := false
		if len(platform) <= 2 {
			present = shortPlatformPattern.MatchString(original)
		} else {
			present = strings.Contains(normalized, platform)
		}
		if !present {
			continue
		}

		if handle, ok := pattern.FindSocialHandle(normalized); ok {
			return ViolationList{NewViolation(KindSocialHandle, SeverityHigh, handle)}
		}
		return ViolationList{NewViolation(KindSocialHandle, SeverityMedium, platform)}
	}
	return nil
}

func (d ContactDetector) detectExchangePhrase(normalized string) ViolationList {
	for _, phrase := range dict.ExchangePhrases {
		if strings.Contains(normalized, phrase) {
			return ViolationList{NewViolation(KindSocialHandle, SeverityLow, phrase)}
		}
	}
	return nil
}
