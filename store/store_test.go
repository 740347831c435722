package store

import (
	"context"
	"errors"
	"testing"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/dict"
)

func TestValidate(t *testing.T) {
	if err := Validate(dict.Wordlists{}); !errors.Is(err, contentfilter.ErrEmptyWordlist) {
		t.Errorf("empty lists: got %v, want ErrEmptyWordlist", err)
	}

	huge := make([]string, MaxWordlistSize+1)
	for i := range huge {
		huge[i] = "x"
	}
	if err := Validate(dict.Wordlists{Profanity: huge}); !errors.Is(err, contentfilter.ErrWordlistTooLarge) {
		t.Errorf("oversized lists: got %v, want ErrWordlistTooLarge", err)
	}

	if err := Validate(dict.DefaultWordlists()); err != nil {
		t.Errorf("built-in lists rejected: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(dict.Wordlists{Profanity: []string{"壞話"}})

	if m.Name() != "memory" {
		t.Errorf("Name = %q", m.Name())
	}
	if err := m.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}

	lists, err := m.LoadWordlists(ctx)
	if err != nil {
		t.Fatalf("LoadWordlists: %v", err)
	}
	if len(lists.Profanity) != 1 || lists.Profanity[0] != "壞話" {
		t.Errorf("loaded lists = %+v", lists)
	}

	m.SetWordlists(dict.Wordlists{Threats: []string{"威脅"}})
	lists, err = m.LoadWordlists(ctx)
	if err != nil {
		t.Fatalf("LoadWordlists after set: %v", err)
	}
	if len(lists.Profanity) != 0 || len(lists.Threats) != 1 {
		t.Errorf("lists not replaced: %+v", lists)
	}

	m.LoadErr = contentfilter.ErrTimeout
	if _, err := m.LoadWordlists(ctx); !errors.Is(err, contentfilter.ErrTimeout) {
		t.Errorf("LoadErr not surfaced: %v", err)
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
