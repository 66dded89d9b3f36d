package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/persona/internal/model"
)

// ContentStore caches acquired content sets as JSON
type ContentStore struct {
	cache Cache
	ttl   time.Duration
}

// NewContentStore wraps c. ttl of zero defers to the cache's default.
func NewContentStore(c Cache, ttl time.Duration) *ContentStore {
	return &ContentStore{cache: c, ttl: ttl}
}

// Load returns the cached set for key. Undecodable entries are dropped and reported as a miss.
func (s *ContentStore) Load(key string) (model.ContentSet, bool) {
	data, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}

	var set model.ContentSet
	if err := json.Unmarshal(data, &set); err != nil {
		_ = s.cache.Delete(key)
		return nil, false
	}
	return set, true
}

// Save stores set under key
func (s *ContentStore) Save(key string, set model.ContentSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal content set: %w", err)
	}
	if err := s.cache.Set(key, data, s.ttl); err != nil {
		return fmt.Errorf("store content set: %w", err)
	}
	return nil
}
