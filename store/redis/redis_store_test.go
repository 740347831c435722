package redis

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Addr != "localhost:6379" {
		t.Errorf("default addr = %q", cfg.Addr)
	}
	if cfg.KeyPrefix != "contentfilter:" {
		t.Errorf("default key prefix = %q", cfg.KeyPrefix)
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Errorf("default dial timeout = %v", cfg.DialTimeout)
	}
}

func TestNewWithClient_PrefixDefault(t *testing.T) {
	s := NewWithClient(nil, "")
	if s.prefix != "contentfilter:" {
		t.Errorf("default prefix = %q", s.prefix)
	}
	s = NewWithClient(nil, "moderation:")
	if s.prefix != "moderation:" {
		t.Errorf("prefix = %q", s.prefix)
	}
}

func TestName(t *testing.T) {
	if got := NewWithClient(nil, "").Name(); got != "redis" {
		t.Errorf("Name() = %q", got)
	}
}
