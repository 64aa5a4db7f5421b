package dialect

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// HashText computes the SHA-256 hash of text. White space is significant:
// it is part of the translated output.
func HashText(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash and direction.
func CacheKey(hash string, dir Direction) string {
	return hash + ":" + string(dir)
}

// CacheKeyExtended generates a cache key that also carries a dictionary
// fingerprint, so results built from different word tables never collide.
func CacheKeyExtended(hash string, dir Direction, fingerprint string) string {
	return hash + ":" + string(dir) + ":" + fingerprint
}

// Fingerprint returns a short hash over every entry of the four dictionaries,
// in iteration order.
func (d *Dictionaries) Fingerprint() string {
	h := sha256.New()
	for _, dict := range []*Dictionary{
		d.AmericanToBritish,
		d.BritishToAmerican,
		d.AmericanToBritishHonorifics,
		d.BritishToAmericanHonorifics,
	} {
		for _, e := range dict.entries {
			io.WriteString(h, e.Source)
			h.Write([]byte{0})
			io.WriteString(h, e.Target)
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}
