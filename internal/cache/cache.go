package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache stores opaque byte values with an expiry
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a key from a source name and an account name.
// Account names are case-insensitive on the platform.
func CacheKey(source, username string) string {
	hash := sha256.Sum256([]byte(source + "\x00" + strings.ToLower(username)))
	return "persona:v1:" + hex.EncodeToString(hash[:])
}
