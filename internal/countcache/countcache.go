// Package countcache memoizes the row-count queries the planner issues to
// compute pagination totals. Counts are expensive (full partition scans)
// and stable for the lifetime of a release, so a small process-local LRU
// avoids repeating them for identical requests.
package countcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of distinct query shapes kept in memory.
const DefaultSize = 2048

// Cache memoizes counts keyed on the query template, partition and bound
// arguments that produced them.
type Cache struct {
	lru *lru.Cache[string, int64]
}

// New builds a cache holding up to size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, int64](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Key builds the cache key for a query shape: the template identity, the
// partition it targets, and its bound arguments, order-independent.
func Key(templateName, partitionID string, args map[string]string) string {
	pairs := make([]string, 0, len(args))
	for k, v := range args {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)

	h := sha256.New()
	h.Write([]byte(templateName))
	h.Write([]byte{0})
	h.Write([]byte(partitionID))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(pairs, "&")))

	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached count for key, if present.
func (c *Cache) Get(key string) (int64, bool) {
	return c.lru.Get(key)
}

// Put stores count under key.
func (c *Cache) Put(key string, count int64) {
	c.lru.Add(key, count)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
