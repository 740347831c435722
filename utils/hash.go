// Package utils provides utility functions for the content filter:
// word-list hashing, retry with backoff for store loads, and multi-field
// text merging.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
)

// HashWordlists returns a SHA-256 hash over the given lists. List order
// and entry order are significant, so the hash doubles as a snapshot
// version: same lists, same version, across runs and machines.
func HashWordlists(lists ...[]string) string {
	h := sha256.New()
	for _, list := range lists {
		for _, word := range list {
			h.Write([]byte(word))
			h.Write([]byte{0x00}) // entry separator
		}
		h.Write([]byte{0x01}) // list separator
	}
	return hex.EncodeToString(h.Sum(nil))
}

// QuickHash returns a fast FNV-1a hash for internal deduplication.
func QuickHash(data string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(data))
	return h.Sum64()
}

// TruncateHash returns a truncated hash for display purposes.
func TruncateHash(hash string, length int) string {
	if len(hash) <= length {
		return hash
	}
	return hash[:length]
}
