package contentfilter

import (
	"testing"

	"github.com/carnote/contentfilter/normalize"
)

func runContact(text string) ViolationList {
	normalized := normalize.Normalize(text, normalize.DefaultOptions())
	return ContactDetector{}.Detect(text, normalized)
}

func TestContactDetector_Phone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain mobile", "0912345678", true},
		{"spaced digits", "0 9 1 2 3 4 5 6 7 8", true},
		{"dashed", "0912-345-678", true},
		{"full-width", "０９１２３４５６７８", true},
		{"chinese numerals", "零九一二三四五六七八", true},
		{"country code", "886912345678", true},
		{"landline", "0223456789", true},
		{"long run fallback", "12345678", true},
		{"repeated digits", "11111111", false},
		{"short run", "12345", false},
		{"order number", "訂單 123456 已完成", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runContact(tt.text).HasKind(KindPhone)
			if got != tt.want {
				t.Errorf("phone detection on %q = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestContactDetector_Line(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     bool
		severity Severity
	}{
		{"keyword with id", "加line abc1234", true, SeverityHigh},
		{"homophone with id", "加我賴 abc1234", true, SeverityHigh},
		{"connective between", "line我abc1234", true, SeverityHigh},
		{"id prefix", "line id abc1234", true, SeverityHigh},
		{"keyword only", "有line嗎", true, SeverityMedium},
		{"separated keyword", "L.I.N.E", true, SeverityMedium},
		{"stop word after keyword", "line hello", true, SeverityMedium},
		{"no keyword", "排隊領號碼牌", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runContact(tt.text)
			got := violations.HasKind(KindLineID)
			if got != tt.want {
				t.Fatalf("line detection on %q = %v, want %v (%+v)", tt.text, got, tt.want, violations)
			}
			if !tt.want {
				return
			}
			found := violations.Filter(func(v Violation) bool { return v.Kind == KindLineID })
			if got := found.HighestSeverity(); got != tt.severity {
				t.Errorf("severity = %s, want %s", got, tt.severity)
			}
		})
	}
}

func TestContactDetector_WeChat(t *testing.T) {
	for _, text := range []string{"加我微信", "wechat: hello", "威信聊"} {
		if !runContact(text).HasKind(KindWeChat) {
			t.Errorf("wechat not detected in %q", text)
		}
	}
	if runContact("微波爐壞了").HasKind(KindWeChat) {
		t.Error("false positive on 微波爐")
	}
}

func TestContactDetector_Email(t *testing.T) {
	violations := runContact("寄到 someone@example.com 謝謝")
	if !violations.HasKind(KindEmail) {
		t.Fatalf("email not detected: %+v", violations)
	}
	if runContact("在@7-11門口等").HasKind(KindEmail) {
		t.Error("false positive on location @")
	}
}

func TestContactDetector_URL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"scheme url", "https://example.com/x", true},
		{"www url", "www.example.com", true},
		{"bare domain", "promo.example.com", true},
		{"shortener", "reurl.cc/abc123", true},
		{"separated shortener", "r e u r l . c c / abc123", true},
		{"decimal number", "價格是 3.5 折", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runContact(tt.text).HasKind(KindURL)
			if got != tt.want {
				t.Errorf("url detection on %q = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestContactDetector_Social(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     bool
		severity Severity
	}{
		{"platform with handle", "instagram @my.handle_99", true, SeverityHigh},
		{"chinese alias", "哀居搜 @myhandle", true, SeverityHigh},
		{"platform only", "我有在玩 threads", true, SeverityMedium},
		{"short name bounded", "ig: 搜我", true, SeverityMedium},
		{"short name inside word", "good night", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runContact(tt.text)
			got := violations.HasKind(KindSocialHandle)
			if got != tt.want {
				t.Fatalf("social detection on %q = %v, want %v (%+v)", tt.text, got, tt.want, violations)
			}
			if !tt.want {
				return
			}
			found := violations.Filter(func(v Violation) bool { return v.Kind == KindSocialHandle })
			if got := found.HighestSeverity(); got != tt.severity {
				t.Errorf("severity = %s, want %s", got, tt.severity)
			}
		})
	}
}

func TestContactDetector_ExchangePhraseFallback(t *testing.T) {
	violations := runContact("可以交換聯絡方式嗎")
	if !violations.HasKind(KindSocialHandle) {
		t.Fatalf("exchange phrase not detected: %+v", violations)
	}
	if got := violations.HighestSeverity(); got != SeverityLow {
		t.Errorf("severity = %s, want %s", got, SeverityLow)
	}

	// The fallback stays silent when a stronger signal already matched.
	violations = runContact("交換聯絡方式 0912345678")
	for _, v := range violations {
		if v.Severity == SeverityLow {
			t.Errorf("low-severity fallback emitted alongside %+v", violations)
		}
	}
}
