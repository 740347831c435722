package dict

import (
	"sync/atomic"

	"github.com/carnote/contentfilter/normalize"
	"github.com/carnote/contentfilter/utils"
)

// Wordlists is the raw, externally supplied form of the swappable lists.
// The contact keyword lists are not part of it; they pair with the
// normalizer tables and stay compiled in.
type Wordlists struct {
	ProfanityHigh   []string `json:"profanity_high"`
	ProfanityMedium []string `json:"profanity_medium"`
	Profanity       []string `json:"profanity"`
	Threats         []string `json:"threats"`
	Harassment      []string `json:"harassment"`
	Discrimination  []string `json:"discrimination"`
	ScamKeywords    []string `json:"scam_keywords"`
	MoneyKeywords   []string `json:"money_keywords"`
}

// Count returns the total number of words across all lists.
func (w Wordlists) Count() int {
	return len(w.ProfanityHigh) + len(w.ProfanityMedium) + len(w.Profanity) +
		len(w.Threats) + len(w.Harassment) + len(w.Discrimination) +
		len(w.ScamKeywords) + len(w.MoneyKeywords)
}

// Snapshot is an immutable, normalized view of the word lists used by one
// filter call. Detectors read from a snapshot and never mutate it; hot
// reloading swaps whole snapshots through a Holder, so an in-flight scan
// keeps the snapshot it started with.
type Snapshot struct {
	version string

	profanityHigh   []string
	profanityMedium []string
	profanity       []string
	threats         []string
	harassment      []string
	discrimination  []string
	scamKeywords    []string
	moneyKeywords   []string

	highSet   map[string]struct{}
	mediumSet map[string]struct{}
}

// NewSnapshot builds a snapshot from raw word lists. Every entry is run
// through the normalizer so that matching against normalized message text
// is consistent; empty and duplicate entries are dropped.
func NewSnapshot(w Wordlists) *Snapshot {
	s := &Snapshot{
		profanityHigh:   normalizeList(w.ProfanityHigh),
		profanityMedium: normalizeList(w.ProfanityMedium),
		profanity:       normalizeList(w.Profanity),
		threats:         normalizeList(w.Threats),
		harassment:      normalizeList(w.Harassment),
		discrimination:  normalizeList(w.Discrimination),
		scamKeywords:    normalizeList(w.ScamKeywords),
		moneyKeywords:   normalizeList(w.MoneyKeywords),
	}

	s.highSet = toSet(s.profanityHigh)
	s.mediumSet = toSet(s.profanityMedium)

	s.version = utils.HashWordlists(
		s.profanityHigh, s.profanityMedium, s.profanity,
		s.threats, s.harassment, s.discrimination,
		s.scamKeywords, s.moneyKeywords,
	)

	return s
}

// DefaultSnapshot returns a snapshot of the built-in lists.
func DefaultSnapshot() *Snapshot {
	return NewSnapshot(DefaultWordlists())
}

// Version returns the content hash of the snapshot, usable as a reload
// change marker.
func (s *Snapshot) Version() string { return s.version }

// Accessors return the normalized lists in their stable scan order. The
// returned slices are shared; callers must treat them as read-only.

func (s *Snapshot) ProfanityHigh() []string  { return s.profanityHigh }
func (s *Snapshot) Profanity() []string      { return s.profanity }
func (s *Snapshot) Threats() []string        { return s.threats }
func (s *Snapshot) Harassment() []string     { return s.harassment }
func (s *Snapshot) Discrimination() []string { return s.discrimination }
func (s *Snapshot) ScamKeywords() []string   { return s.scamKeywords }
func (s *Snapshot) MoneyKeywords() []string  { return s.moneyKeywords }

// InHighTier checks high-tier membership of a normalized word.
func (s *Snapshot) InHighTier(word string) bool {
	_, ok := s.highSet[word]
	return ok
}

// InMediumTier checks medium-tier membership of a normalized word.
func (s *Snapshot) InMediumTier(word string) bool {
	_, ok := s.mediumSet[word]
	return ok
}

// Holder publishes the current snapshot to filter calls and lets a
// reloader swap in a new one atomically. A zero Holder is not usable; use
// NewHolder.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder starting from the given snapshot.
func NewHolder(snap *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(snap)
	return h
}

// Load returns the current snapshot.
func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

// Swap replaces the current snapshot and returns the previous one.
func (h *Holder) Swap(snap *Snapshot) *Snapshot {
	return h.current.Swap(snap)
}

func normalizeList(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, w := range words {
		n := normalize.Normalize(w, normalize.DefaultOptions())
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
