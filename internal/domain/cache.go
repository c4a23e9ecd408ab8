package domain

import (
	"encoding/json"
	"time"
)

// DefaultCacheTTL is how long a generated payload stays valid.
const DefaultCacheTTL = 7 * 24 * time.Hour

// CacheEntry is a validated generation payload stored under a content-addressable key.
type CacheEntry struct {
	Key       string
	Kind      ContentKind
	Payload   json.RawMessage
	ModelTag  string
	CreatedAt time.Time
	ExpiresAt time.Time
	HitCount  int64
	LastHitAt *time.Time
}

// IsFresh reports whether the entry may still be served at now.
func (e *CacheEntry) IsFresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}
