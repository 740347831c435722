// Package visibility decides how a message that failed filtering is
// displayed to different viewers: hidden, masked, or replaced with a
// notice. The author always sees their own text so they can fix it.
package visibility

import (
	contentfilter "github.com/carnote/contentfilter"
)

// FieldType identifies the kind of user-authored text being displayed.
type FieldType string

const (
	// FieldMessage is a courtesy message sent to another driver.
	FieldMessage FieldType = "message"

	// FieldReply is a reply within an existing message thread.
	FieldReply FieldType = "reply"

	// FieldPlateNote is a note the author attaches to their own plate.
	FieldPlateNote FieldType = "plate_note"

	// FieldNickname is a public display name.
	FieldNickname FieldType = "nickname"
)

// Policy defines how flagged content is displayed to non-authors.
type Policy string

const (
	// PolicyHidden hides the flagged text entirely.
	PolicyHidden Policy = "hidden"

	// PolicyMasked shows the text with the matched substrings masked out.
	PolicyMasked Policy = "masked"

	// PolicyNotice replaces the text with a field-specific notice.
	PolicyNotice Policy = "notice"
)

// ViewerRole represents who is viewing the content.
type ViewerRole string

const (
	ViewerAuthor    ViewerRole = "author"    // Wrote the text
	ViewerRecipient ViewerRole = "recipient" // The other party in the thread
	ViewerAdmin     ViewerRole = "admin"     // Moderation staff
)

// FieldPolicyRegistry maps field types to their display policies.
var FieldPolicyRegistry = map[FieldType]Policy{
	// Thread content keeps its shape so the conversation stays readable.
	FieldMessage: PolicyNotice,
	FieldReply:   PolicyNotice,

	// Profile-like fields are masked rather than removed.
	FieldPlateNote: PolicyMasked,
	FieldNickname:  PolicyMasked,
}

// GetPolicy returns the display policy for a field type.
func GetPolicy(field FieldType) Policy {
	if policy, ok := FieldPolicyRegistry[field]; ok {
		return policy
	}
	return PolicyHidden // Default to strictest
}

// SetPolicy sets a custom display policy for a field type.
func SetPolicy(field FieldType, policy Policy) {
	FieldPolicyRegistry[field] = policy
}

// CanViewOriginal reports whether the viewer may see the unmodified text
// despite violations. Authors always see their own text; admins see
// everything.
func CanViewOriginal(result contentfilter.ContentFilterResult, viewer ViewerRole) bool {
	if result.IsValid {
		return true
	}
	return viewer == ViewerAuthor || viewer == ViewerAdmin
}
