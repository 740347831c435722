package pattern

import (
	"reflect"
	"testing"
)

func TestIsPossiblePhone(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{"taiwan mobile", "0912345678", true},
		{"taiwan landline taipei", "0223456789", true},
		{"taiwan landline short", "042345678", true},
		{"international 886", "886912345678", true},
		{"generic long run", "12345678", true},
		{"too short", "123456", false},
		{"too long", "1234567890123", false},
		{"all same digit", "0000000000", false},
		{"seven digit non phone", "1234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPossiblePhone(tt.digits); got != tt.want {
				t.Errorf("IsPossiblePhone(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

func TestFindTaiwanMobile(t *testing.T) {
	got := FindTaiwanMobile("加我0912345678聊")
	want := []string{"0912345678"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTaiwanMobile() = %v, want %v", got, want)
	}

	if got := FindTaiwanMobile("沒有電話"); got != nil {
		t.Errorf("FindTaiwanMobile() = %v, want nil", got)
	}
}
