// Package cache provides result caches for the dialect translator.
//
// Values are opaque strings; the translator stores JSON-encoded results under
// keys derived from the text hash, the direction and a dictionary fingerprint.
package cache

import "context"

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached result. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a result in the cache.
	Set(key string, value string) error
}

// Enumerable is a cache whose live entries can be listed, for export.
type Enumerable interface {
	TranslationCache
	Entries(ctx context.Context) (map[string]string, error)
}

// Stats counts lookups since a cache was created.
type Stats struct {
	Hits   int64
	Misses int64
}

// HitRate returns the fraction of lookups that were hits.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
