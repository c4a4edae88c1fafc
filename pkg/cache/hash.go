package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// PageKey returns the cache key for a page request. Query parameters are
// order independent: url.Values.Encode sorts them by key.
func PageKey(path string, query url.Values) string {
	if path == "" {
		path = "/"
	}
	return "page:" + Hash([]byte(path+"?"+query.Encode()))
}
