package report

import (
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memoizer caches computed summaries for a short interval so repeated render
// passes over an unchanged store do not recompute the same aggregation.
// Cache keys must include the store version: a write bumps the version, which
// makes every stale entry unreachable until it expires.
type Memoizer struct {
	cache *gocache.Cache
}

// NewMemoizer creates a memoizer whose entries expire after ttl.
func NewMemoizer(ttl time.Duration) *Memoizer {
	return &Memoizer{cache: gocache.New(ttl, 2*ttl)}
}

// CacheKey builds a cache key from a query name, the store version and any
// further discriminators (language, window size).
func CacheKey(query string, version uint64, extra ...string) string {
	parts := append([]string{query, strconv.FormatUint(version, 10)}, extra...)
	return strings.Join(parts, "|")
}

// Do returns the cached value for key, or computes, stores and returns it.
func (m *Memoizer) Do(key string, compute func() any) any {
	if v, ok := m.cache.Get(key); ok {
		return v
	}
	v := compute()
	m.cache.Set(key, v, gocache.DefaultExpiration)
	return v
}

// Flush drops all cached entries.
func (m *Memoizer) Flush() {
	m.cache.Flush()
}
