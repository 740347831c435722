package visibility

import (
	"strconv"
	"strings"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/utils"
)

// RenderedText is the display form of one text for one viewer.
type RenderedText struct {
	Visible  bool   // Whether anything is shown at all
	Value    string // The value to display
	IsMasked bool   // Whether matched substrings were masked
	Message  string // Optional notice (violation message or review note)

	// OriginalHash is a short hash of the original text, set whenever the
	// original is withheld or altered so callers can audit what was shown
	// without storing the text itself.
	OriginalHash string
}

// Renderer renders filtered text according to field policies.
type Renderer struct {
	notices map[FieldType]string
}

// NewRenderer creates a renderer with the default notices.
func NewRenderer() *Renderer {
	return &Renderer{
		notices: map[FieldType]string{
			FieldMessage:   "此訊息因違反社群規範已隱藏",
			FieldReply:     "此回覆因違反社群規範已隱藏",
			FieldPlateNote: "",
			FieldNickname:  "用戶",
		},
	}
}

// SetNotice sets the replacement notice for a field type.
func (r *Renderer) SetNotice(field FieldType, notice string) {
	r.notices[field] = notice
}

// Render produces the display form of text for the given viewer. Clean
// text passes through; flagged text is shown to its author with the
// violation message attached, and to everyone else according to the
// field's policy.
func (r *Renderer) Render(field FieldType, viewer ViewerRole, result contentfilter.ContentFilterResult) RenderedText {
	if result.IsValid {
		return RenderedText{Visible: true, Value: result.OriginalText}
	}

	if CanViewOriginal(result, viewer) {
		return RenderedText{
			Visible: true,
			Value:   result.OriginalText,
			Message: result.FirstMessage(),
		}
	}

	hash := originalHash(result.OriginalText)

	switch GetPolicy(field) {
	case PolicyMasked:
		masked, ok := MaskViolations(result.OriginalText, result.Violations)
		if !ok {
			// Nothing maskable found in the original spelling; fall back
			// to the notice.
			return r.notice(field, hash)
		}
		return RenderedText{Visible: true, Value: masked, IsMasked: true, OriginalHash: hash}

	case PolicyNotice:
		return r.notice(field, hash)

	default:
		return RenderedText{Visible: false, OriginalHash: hash}
	}
}

func (r *Renderer) notice(field FieldType, hash string) RenderedText {
	notice := r.notices[field]
	if notice == "" {
		return RenderedText{Visible: false, OriginalHash: hash}
	}
	return RenderedText{Visible: true, Value: notice, IsMasked: true, OriginalHash: hash}
}

// originalHash returns the hex form of a fast content hash. It identifies
// a withheld value in audit logs; it is not collision resistant.
func originalHash(text string) string {
	return strconv.FormatUint(utils.QuickHash(text), 16)
}

// MaskViolations replaces every case-insensitive occurrence of each
// violation's matched substring with asterisks. It reports false when no
// occurrence was found, which happens when the match only exists in the
// normalized spelling of an evasion variant.
func MaskViolations(text string, violations contentfilter.ViolationList) (string, bool) {
	maskedAny := false
	for _, v := range violations {
		if v.Matched == "" {
			continue
		}
		var ok bool
		text, ok = maskAll(text, v.Matched)
		maskedAny = maskedAny || ok
	}
	return text, maskedAny
}

// maskAll replaces case-insensitive occurrences of needle in text with a
// run of '＊' of the same rune length. Case folding is ASCII-only so byte
// offsets in the folded text line up with the original.
func maskAll(text, needle string) (string, bool) {
	lowerText := asciiLower(text)
	lowerNeedle := asciiLower(needle)

	mask := strings.Repeat("＊", len([]rune(needle)))

	var b strings.Builder
	replaced := false
	for {
		idx := strings.Index(lowerText, lowerNeedle)
		if idx < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:idx])
		b.WriteString(mask)
		text = text[idx+len(lowerNeedle):]
		lowerText = lowerText[idx+len(lowerNeedle):]
		replaced = true
	}
	return b.String(), replaced
}

func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
