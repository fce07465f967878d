// SPDX-License-Identifier: MIT

package qdefect

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/rydberg/quantum"
)

// Cache memoizes another Provider with a fixed-size LRU.
// Failed lookups are not cached. Safe for concurrent use.
type Cache struct {
	next  Provider
	cache *lru.Cache[quantum.State, Parameters]
}

var _ Provider = (*Cache)(nil)

// NewCache wraps next with an LRU of the given size (DefaultCacheSize if size ≤ 0).
func NewCache(next Provider, size int) (*Cache, error) {
	if next == nil {
		return nil, fmt.Errorf("qdefect: NewCache: nil provider")
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[quantum.State, Parameters](size)
	if err != nil {
		return nil, fmt.Errorf("qdefect: NewCache: %w", err)
	}

	return &Cache{next: next, cache: c}, nil
}

// Parameters implements Provider.
func (c *Cache) Parameters(ctx context.Context, st quantum.State) (Parameters, error) {
	if p, ok := c.cache.Get(st); ok {
		return p, nil
	}
	p, err := c.next.Parameters(ctx, st)
	if err != nil {
		return Parameters{}, err
	}
	c.cache.Add(st, p)

	return p, nil
}

// Len reports the number of cached states.
func (c *Cache) Len() int { return c.cache.Len() }

// Purge drops every cached entry.
func (c *Cache) Purge() { c.cache.Purge() }
