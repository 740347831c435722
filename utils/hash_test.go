package utils

import "testing"

func TestHashWordlists(t *testing.T) {
	a := HashWordlists([]string{"幹", "靠北"}, []string{"殺了你"})
	b := HashWordlists([]string{"幹", "靠北"}, []string{"殺了你"})
	if a != b {
		t.Error("HashWordlists() is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("HashWordlists() produced hash of length %d, want 64", len(a))
	}
}

func TestHashWordlists_OrderSensitive(t *testing.T) {
	a := HashWordlists([]string{"幹", "靠北"})
	b := HashWordlists([]string{"靠北", "幹"})
	if a == b {
		t.Error("HashWordlists() ignored entry order")
	}

	// List boundaries matter: ["a","b"],[] vs ["a"],["b"]
	c := HashWordlists([]string{"a", "b"}, nil)
	d := HashWordlists([]string{"a"}, []string{"b"})
	if c == d {
		t.Error("HashWordlists() ignored list boundaries")
	}
}

func TestQuickHash(t *testing.T) {
	if QuickHash("hello") == QuickHash("world") {
		t.Error("Different inputs produced same hash")
	}
	if QuickHash("hello") != QuickHash("hello") {
		t.Error("QuickHash() is not deterministic")
	}
}

func TestTruncateHash(t *testing.T) {
	if got := TruncateHash("abcdef", 4); got != "abcd" {
		t.Errorf("TruncateHash() = %q, want %q", got, "abcd")
	}
	if got := TruncateHash("ab", 4); got != "ab" {
		t.Errorf("TruncateHash() = %q, want %q", got, "ab")
	}
}
