package pattern

import "testing"

func TestIsValidLineID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"abc1234", true},
		{"a.b_c123", true},
		{"Driver2024x", true},
		{"abc", false},          // too short
		{"1abc", false},         // digit-initial
		{"abc!def", false},      // bad character
		{"hello", false},        // stop-listed
		{"thanks", false},       // stop-listed
		{"verylongidthatkeepsgoingforever", false}, // too long
	}

	for _, tt := range tests {
		if got := IsValidLineID(tt.id); got != tt.want {
			t.Errorf("IsValidLineID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsValidTaiwanID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"A123456789", true},
		{"a123456789", true},  // case-insensitive
		{"A123456788", false}, // checksum fails
		{"A323456789", false}, // gender digit must be 1 or 2
		{"0123456789", false}, // no leading letter
		{"A12345678", false},  // too short
	}

	for _, tt := range tests {
		if got := IsValidTaiwanID(tt.id); got != tt.want {
			t.Errorf("IsValidTaiwanID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsValidCreditCard(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"4111111111111111", true},
		{"4111111111111112", false}, // Luhn fails
		{"411111111111111", false},  // 15 digits
		{"41111111111111111", false},
		{"4111a11111111111", false},
	}

	for _, tt := range tests {
		if got := IsValidCreditCard(tt.number); got != tt.want {
			t.Errorf("IsValidCreditCard(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}
