// Package dict holds the word lists the detectors match against: profanity
// tiers, threat and discrimination terms, contact-exchange keywords, and
// scam vocabulary. Lists are packaged as immutable snapshots; the embedding
// application may swap in externally managed lists at runtime without a
// redeploy.
package dict

// Built-in abusive-language lists. These ship as defaults; an admin-managed
// store can replace them wholesale through a Snapshot swap.

// defaultProfanityHigh is the small tier of extreme slurs and
// threat-adjacent phrases that block on their own.
var defaultProfanityHigh = []string{
	"幹你娘", "幹您娘", "操你媽", "肏你媽", "操你全家", "幹林老師",
	"狗娘養的", "去吃屎", "下地獄",
}

// defaultProfanityMedium is common profanity.
var defaultProfanityMedium = []string{
	"幹", "靠北", "靠腰", "媽的", "他媽的", "她媽的", "王八蛋",
	"混蛋", "白癡", "智障", "北七", "三小", "雞掰", "機掰",
	"婊子", "賤人", "廢物", "垃圾人", "不要臉", "無恥",
}

// defaultProfanity is the general scan list: the two tiers above plus
// low-severity name-calling.
var defaultProfanity = append(append(append([]string{},
	defaultProfanityHigh...),
	defaultProfanityMedium...),
	"笨蛋", "蠢貨", "腦殘", "白目", "魯蛇", "俗辣", "孬種", "欠罵",
)

// defaultThreats lists threat phrases. A single hit blocks.
var defaultThreats = []string{
	"殺了你", "弄死你", "打死你", "砍死你", "你死定了", "等著瞧",
	"給我小心", "找人處理你", "廢了你", "砸你車", "刮你車", "拆你車",
	"讓你好看", "放火燒",
}

// defaultHarassment lists harassment phrases. Matching is wired but
// disabled in the shipped pipeline: too many false positives on ordinary
// messages between strangers.
var defaultHarassment = []string{
	"約嗎", "單身嗎", "住哪裡", "幾歲", "要不要出來", "加個好友嗎",
	"長得正", "看你很久了", "跟著你",
}

// defaultDiscrimination lists discriminatory terms.
var defaultDiscrimination = []string{
	"死外勞", "死gay", "娘炮", "死肥豬", "窮鬼", "低端人口",
	"鄉巴佬", "智能不足", "殘障還開車",
}

// defaultScamKeywords feeds the keyword-density check (disabled by
// default). Individually these words are common; only three or more
// distinct hits are suspicious.
var defaultScamKeywords = []string{
	"穩賺", "高報酬", "保證獲利", "被動收入", "兼職", "在家工作",
	"日領", "快速賺錢", "老師帶單", "飆股", "內線", "娛樂城",
	"博彩", "貸款", "免擔保", "代辦", "急用錢",
}

// defaultMoneyKeywords gates bank-account detection: a long digit run is
// only flagged when one of these appears somewhere in the text.
var defaultMoneyKeywords = []string{
	"匯款", "匯到", "轉帳", "轉賬", "轉到", "帳戶", "帳號", "账户",
	"投資", "收款", "付款", "先付", "訂金", "定金", "代收", "儲值",
}

// Contact keyword lists. These are structural: they pair with the
// normalizer's substitution tables (賴 → line, 微信 → wechat), so they stay
// compiled in rather than admin-editable.

// LineKeyword is the canonical LINE token every homophone collapses to
// during normalization.
const LineKeyword = "line"

// LineActionPrefixes are the intent verbs that commonly precede a LINE
// token ("加line", "私line").
var LineActionPrefixes = []string{"加", "私", "傳", "加我", "我的", "搜"}

// WeChatKeywords match after normalization has collapsed 微信/威信/薇信 to
// "wechat".
var WeChatKeywords = []string{"wechat", "weixin"}

// SocialPlatforms are platform names searched in normalized text. Entries
// shorter than three characters are matched with word boundaries on the
// original text instead, to avoid firing inside English words.
var SocialPlatforms = []string{
	"instagram", "facebook", "twitter", "tiktok", "telegram",
	"discord", "threads", "dcard", "小紅書", "ig", "fb",
}

// ExchangePhrases are generic "let's swap contact info" phrases. On their
// own they only warrant a low-severity violation.
var ExchangePhrases = []string{
	"交換聯絡", "聯絡方式", "留個聯絡", "加好友", "私訊我", "密我",
	"留電話", "聯絡我", "私下聊",
}

// DefaultWordlists returns the built-in lists.
func DefaultWordlists() Wordlists {
	return Wordlists{
		ProfanityHigh:   defaultProfanityHigh,
		ProfanityMedium: defaultProfanityMedium,
		Profanity:       defaultProfanity,
		Threats:         defaultThreats,
		Harassment:      defaultHarassment,
		Discrimination:  defaultDiscrimination,
		ScamKeywords:    defaultScamKeywords,
		MoneyKeywords:   defaultMoneyKeywords,
	}
}
