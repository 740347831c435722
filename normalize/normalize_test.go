package normalize

import (
	"reflect"
	"testing"
)

func TestNormalize_Whitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaced digits", "0 9 1 2 3 4 5 6 7 8", "0912345678"},
		{"ideographic space", "09　12345678", "0912345678"},
		{"zero width space", "09​12345678", "0912345678"},
		{"bom", "\uFEFF0912345678", "0912345678"},
		{"tabs and newlines", "09\t12\n345678", "0912345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, DefaultOptions())
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Separators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dotted line", "L.I.N.E", "line"},
		{"dashed digits", "0912-345-678", "0912345678"},
		{"mixed separators", "09*12~34_56:78", "0912345678"},
		{"full width dots", "Ｌ．Ｉ．Ｎ．Ｅ", "line"},
		{"bullets", "09•12·345678", "0912345678"},
		{"half width ideographic stops", "0912｡345｡678", "0912345678"},
		{"half width corner brackets", "｢0912345678｣", "0912345678"},
		{"full width brackets and quotes", "［０９１２＂３４５＇６７８］", "0912345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, DefaultOptions())
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_CharSubstitution(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full width digits", "０９１２３４５６７８", "0912345678"},
		{"chinese numerals", "零九一二三四五六七八", "0912345678"},
		{"financial numerals", "零玖壹貳參肆伍陸柒捌", "0912345678"},
		{"full width letters", "ＬＩＮＥ", "line"},
		{"cyrillic lookalike e", "linе", "line"},
		{"cyrillic lookalike o", "о912345678", "o912345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, DefaultOptions())
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_WordSubstitution(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lai homophone", "加我賴", "加我line"},
		{"lai with id", "加我賴 abc1234", "加我lineabc1234"},
		{"weixin", "加微信聊", "加wechat聊"},
		{"weixin homophone", "加威信聊", "加wechat聊"},
		{"platform alias", "我的臉書", "我的facebook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, DefaultOptions())
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"0 9 1 2 3 4 5 6 7 8",
		"加我賴 abc1234",
		"Ｌ．Ｉ．Ｎ．Ｅ",
		"你的車燈沒關",
		"零玖壹貳參肆伍陸柒捌",
		"匯款到 1234567890123 這個帳戶",
		"｡",
		"０９１２｡３４５｡６７８",
		"加我賴｡abc1234",
	}

	for _, input := range inputs {
		once := Normalize(input, DefaultOptions())
		twice := Normalize(once, DefaultOptions())
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalize_StageToggles(t *testing.T) {
	// Only lowercasing enabled: everything else must survive.
	opts := Options{Lowercase: true}
	got := Normalize("A.B C賴", opts)
	if got != "a.b c賴" {
		t.Errorf("Normalize with lowercase only = %q, want %q", got, "a.b c賴")
	}

	// Light options keep separators but drop spaces and fold width.
	got = Normalize("Ａ.Ｂ Ｃ", LightOptions())
	if got != "a.bc" {
		t.Errorf("Normalize with light options = %q, want %q", got, "a.bc")
	}
}

func TestNormalize_PassThrough(t *testing.T) {
	// Unrecognized code points are opaque: no substitution, no failure.
	input := "🚗😀한국어ไทย"
	got := Normalize(input, DefaultOptions())
	if got != input {
		t.Errorf("Normalize(%q) = %q, want unchanged", input, got)
	}
}

func TestNormalizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0 9 1 2 3 4 5 6 7 8", "0912345678"},
		{"電話：０９１２－３４５－６７８", "0912345678"},
		{"零九一二三四五六七八", "0912345678"},
		{"no digits here", ""},
	}

	for _, tt := range tests {
		got := NormalizeNumbers(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeNumbers(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractNumberSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single run", "0 9 1 2 3 4 5 6 7 8", []string{"0912345678"}},
		{"two runs", "說好的 0912345678 還有 12345", []string{"0912345678", "12345"}},
		{"chinese numerals", "零九一二三四五六七八", []string{"0912345678"}},
		{"no digits", "你的車燈沒關", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumberSequences(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNumberSequences(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
