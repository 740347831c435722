// Package contentfilter implements the message moderation core for a
// ride-courtesy messaging product. It decides whether user-composed text
// contains contact information (phone numbers, LINE/WeChat IDs, emails,
// URLs, social handles), profanity and threats, or scam signals (national
// IDs, credit cards, crypto wallets, bank accounts), including evasion
// variants built from spacing, separators, full-width characters,
// homophones, and Chinese numerals.
//
// The engine is a pure function over UTF-8 text: no I/O, no logging, no
// state beyond the injected word lists. Callers pass raw text plus a
// severity threshold and react to the returned violations.
package contentfilter

// Kind identifies the category of a detected violation.
type Kind string

const (
	// Contact information
	KindPhone        Kind = "phone"
	KindLineID       Kind = "line_id"
	KindWeChat       Kind = "wechat"
	KindEmail        Kind = "email"
	KindURL          Kind = "url"
	KindSocialHandle Kind = "social_handle"

	// Abusive language
	KindProfanity      Kind = "profanity"
	KindThreat         Kind = "threat"
	KindHarassment     Kind = "harassment"
	KindDiscrimination Kind = "discrimination"

	// Scam and sensitive identifiers
	KindBankAccount  Kind = "bank_account"
	KindCryptoWallet Kind = "crypto_wallet"
	KindScamKeyword  Kind = "scam_keyword"
	KindNationalID   Kind = "national_id"
	KindCreditCard   Kind = "credit_card"
)

// Severity represents how serious a violation is. Values are ordered so
// that thresholds can be compared with >=.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
)

// String returns the string representation of Severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// KindInfo provides metadata about a violation kind.
type KindInfo struct {
	Kind    Kind
	Name    string
	Message string // Canonical user-facing message for this kind
}

// KindRegistry maps every kind to its metadata. Every Violation message is
// drawn from this table; callers never see a kind without a canonical
// message.
var KindRegistry = map[Kind]KindInfo{
	KindPhone: {
		Kind:    KindPhone,
		Name:    "Phone Number",
		Message: "訊息不可包含電話號碼",
	},
	KindLineID: {
		Kind:    KindLineID,
		Name:    "LINE ID",
		Message: "訊息不可包含 LINE 帳號或加賴邀請",
	},
	KindWeChat: {
		Kind:    KindWeChat,
		Name:    "WeChat",
		Message: "訊息不可包含微信帳號",
	},
	KindEmail: {
		Kind:    KindEmail,
		Name:    "Email",
		Message: "訊息不可包含電子郵件地址",
	},
	KindURL: {
		Kind:    KindURL,
		Name:    "URL",
		Message: "訊息不可包含網址連結",
	},
	KindSocialHandle: {
		Kind:    KindSocialHandle,
		Name:    "Social Handle",
		Message: "訊息不可包含社群帳號或交換聯絡方式",
	},
	KindProfanity: {
		Kind:    KindProfanity,
		Name:    "Profanity",
		Message: "訊息包含不當用語，請保持友善",
	},
	KindThreat: {
		Kind:    KindThreat,
		Name:    "Threat",
		Message: "訊息包含威脅性言論",
	},
	KindHarassment: {
		Kind:    KindHarassment,
		Name:    "Harassment",
		Message: "訊息包含騷擾性言論",
	},
	KindDiscrimination: {
		Kind:    KindDiscrimination,
		Name:    "Discrimination",
		Message: "訊息包含歧視性言論",
	},
	KindBankAccount: {
		Kind:    KindBankAccount,
		Name:    "Bank Account",
		Message: "訊息不可包含銀行帳號",
	},
	KindCryptoWallet: {
		Kind:    KindCryptoWallet,
		Name:    "Crypto Wallet",
		Message: "訊息不可包含加密貨幣錢包地址",
	},
	KindScamKeyword: {
		Kind:    KindScamKeyword,
		Name:    "Scam Keywords",
		Message: "訊息包含可疑的詐騙用語",
	},
	KindNationalID: {
		Kind:    KindNationalID,
		Name:    "National ID",
		Message: "訊息不可包含身分證字號",
	},
	KindCreditCard: {
		Kind:    KindCreditCard,
		Name:    "Credit Card",
		Message: "訊息不可包含信用卡號",
	},
}

// MessageFor returns the canonical message for a kind.
func MessageFor(kind Kind) string {
	if info, ok := KindRegistry[kind]; ok {
		return info.Message
	}
	return "訊息包含不允許的內容"
}

// Default configuration values.
const (
	DefaultMinSeverity = SeverityLow

	// DefaultFieldMergeMaxLen bounds one merged multi-field scan.
	DefaultFieldMergeMaxLen = 1800

	// DefaultFieldMergeSeparator keeps merged fields from fusing into
	// accidental matches across field boundaries. The section sign
	// survives normalization, so it still breaks digit runs and keyword
	// adjacency after whitespace and punctuation are stripped.
	DefaultFieldMergeSeparator = "\n§\n"
)
