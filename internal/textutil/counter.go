package textutil

import (
	"sort"

	"github.com/ppiankov/persona/internal/model"
)

// Counter counts keys and remembers the order in which each key was first seen.
// MostCommon breaks ties by that order, so rankings are reproducible.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments key by one
func (c *Counter) Add(key string) {
	c.AddN(key, 1)
}

// AddN increments key by n
func (c *Counter) AddN(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Get returns the count for key
func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys
func (c *Counter) Len() int {
	return len(c.order)
}

// Total returns the sum of all counts
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Keys returns keys in first-seen order
func (c *Counter) Keys() []string {
	return append([]string(nil), c.order...)
}

// MostCommon returns the n highest counts. n <= 0 returns every key.
func (c *Counter) MostCommon(n int) []model.Count {
	out := make([]model.Count, len(c.order))
	for i, key := range c.order {
		out[i] = model.Count{Key: key, Count: c.counts[key]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
