package normalize

import "sort"

// wordSubstitutions maps multi-character evasion variants to their
// canonical form. Applied before whitespace removal so that substitutions
// keyed on adjacent characters are not fused incorrectly first.
var wordSubstitutions = map[string]string{
	// LINE homophones ("加我賴" → "加我line")
	"賴":  "line",
	"籟":  "line",
	"瀨":  "line",
	"萊恩": "line",

	// WeChat variants
	"微信": "wechat",
	"威信": "wechat",
	"薇信": "wechat",
	"維信": "wechat",

	// Social platform aliases. Aliases expand to the full platform name:
	// two-letter outputs would be ambiguous inside whitespace-stripped
	// text ("goodnight" contains "ig").
	"臉書":  "facebook",
	"脸书":  "facebook",
	"推特":  "twitter",
	"抖音":  "tiktok",
	"電報":  "telegram",
	"小飛機": "telegram",
	"哀居":  "instagram",
	"愛居":  "instagram",
}

// wordKeys holds substitution keys sorted longest first, so that scanning
// always takes the longest match at each position.
var wordKeys = func() []string {
	keys := make([]string, 0, len(wordSubstitutions))
	for k := range wordSubstitutions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// whitespaceSet is the fixed set of Unicode space and zero-width code
// points stripped during normalization. Removal has no mid-word
// exceptions: "0 9 1 2" reassembles into "0912".
var whitespaceSet = map[rune]struct{}{
	0x0009: {}, // tab
	0x000A: {}, // line feed
	0x000B: {}, // vertical tab
	0x000C: {}, // form feed
	0x000D: {}, // carriage return
	0x0020: {}, // space
	0x0085: {}, // next line
	0x00A0: {}, // no-break space
	0x1680: {}, // ogham space mark
	0x2000: {}, // en quad
	0x2001: {}, // em quad
	0x2002: {}, // en space
	0x2003: {}, // em space
	0x2004: {}, // three-per-em space
	0x2005: {}, // four-per-em space
	0x2006: {}, // six-per-em space
	0x2007: {}, // figure space
	0x2008: {}, // punctuation space
	0x2009: {}, // thin space
	0x200A: {}, // hair space
	0x200B: {}, // zero-width space
	0x200C: {}, // zero-width non-joiner
	0x200D: {}, // zero-width joiner
	0x2028: {}, // line separator
	0x2029: {}, // paragraph separator
	0x202F: {}, // narrow no-break space
	0x205F: {}, // medium mathematical space
	0x3000: {}, // ideographic space
	0xFEFF: {}, // BOM / zero-width no-break space
}

// separatorSet covers punctuation and bullet characters commonly inserted
// to break up tokens ("0-9-1-2", "L.I.N.E").
var separatorSet = map[rune]struct{}{
	'.': {}, '-': {}, '_': {}, ':': {}, '/': {}, '\\': {},
	',': {}, ';': {}, '|': {}, '*': {}, '~': {}, '\'': {}, '"': {},
	'(': {}, ')': {}, '[': {}, ']': {},

	// Full-width variants
	'．': {}, '－': {}, '＿': {}, '：': {}, '／': {}, '＼': {},
	'，': {}, '；': {}, '｜': {}, '＊': {}, '～': {},
	'（': {}, '）': {}, '「': {}, '」': {}, '【': {}, '】': {},
	'、': {}, '。': {}, '［': {}, '］': {}, '＂': {}, '＇': {},

	// Half-width CJK variants, which width folding maps onto the
	// full-width forms above
	'｡': {}, '､': {}, '･': {}, '｢': {}, '｣': {},

	// Bullets and decorations
	'•': {}, '·': {}, '・': {}, '●': {}, '○': {}, '◆': {}, '■': {},
	'★': {}, '☆': {}, '※': {}, '—': {}, '–': {},
}

// charSubstitutions maps single characters that survive width folding:
// Chinese numerals (financial and common forms) and a small set of
// cross-script homoglyphs. Applied digit-by-digit, so "零九壹貳" becomes
// "0912".
var charSubstitutions = map[rune]rune{
	// Common Chinese numerals
	'零': '0', '〇': '0',
	'一': '1', '二': '2', '三': '3', '四': '4', '五': '5',
	'六': '6', '七': '7', '八': '8', '九': '9',

	// Financial forms
	'壹': '1', '貳': '2', '參': '3', '肆': '4', '伍': '5',
	'陸': '6', '柒': '7', '捌': '8', '玖': '9',
	'贰': '2', '叁': '3', '陆': '6',

	// Variants
	'兩': '2', '两': '2',

	// Cyrillic lookalikes; NFKC/width folding does not touch cross-script
	// confusables, so these need an explicit table.
	'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p', 'с': 'c', 'х': 'x', 'у': 'y',
	'А': 'A', 'В': 'B', 'Е': 'E', 'К': 'K', 'М': 'M', 'Н': 'H',
	'О': 'O', 'Р': 'P', 'С': 'C', 'Т': 'T', 'Х': 'X',

	// Greek lookalikes
	'ο': 'o', 'α': 'a', 'ν': 'v', 'Ο': 'O', 'Α': 'A', 'Ε': 'E',
}
