package hooks

import (
	"time"
)

// WordlistReloadedEvent is emitted after a reload successfully swapped in
// a new dictionary snapshot.
type WordlistReloadedEvent struct {
	// Source is the store the lists were loaded from (sql, redis, memory).
	Source string `json:"source"`

	// OldVersion is the content hash of the replaced snapshot.
	OldVersion string `json:"old_version"`

	// NewVersion is the content hash of the active snapshot.
	NewVersion string `json:"new_version"`

	// WordCount is the total number of words across all lists.
	WordCount int `json:"word_count"`

	// Duration covers the load, validation, and swap.
	Duration time.Duration `json:"duration"`

	Timestamp time.Time `json:"timestamp"`
}

// Changed reports whether the reload actually produced different content.
func (e WordlistReloadedEvent) Changed() bool {
	return e.OldVersion != e.NewVersion
}

// ReloadFailedEvent is emitted when a reload cycle gives up. The previous
// snapshot stays active; this event is the only signal that the lists are
// stale.
type ReloadFailedEvent struct {
	// Source is the store the reload was loading from.
	Source string `json:"source"`

	// Err is the final error after retries.
	Err error `json:"-"`

	// Attempts is the number of load attempts made.
	Attempts int `json:"attempts"`

	Timestamp time.Time `json:"timestamp"`
}
