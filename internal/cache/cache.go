// Package cache is a capacity-bounded store of loaded files, keyed by file
// path. The capacity and eviction policy are fixed at construction.
package cache

import (
	"container/list"

	"webserver/internal/files"
)

// Policy selects which entry is evicted when the cache is full.
type Policy int

const (
	// PolicyLRU evicts the least recently used entry. Get refreshes an
	// entry's position.
	PolicyLRU Policy = iota
	// PolicyFIFO evicts the oldest inserted entry regardless of use.
	PolicyFIFO
)

type entry struct {
	path    string
	payload *files.FileData
}

type Cache struct {
	capacity int
	policy   Policy
	order    *list.List
	index    map[string]*list.Element
}

// New creates a cache holding at most capacity entries.
func New(capacity int, policy Policy) *Cache {
	return &Cache{
		capacity: capacity,
		policy:   policy,
		order:    list.New(),
		index:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the payload stored for path, or nil on a miss.
func (c *Cache) Get(path string) *files.FileData {
	el, ok := c.index[path]
	if !ok {
		return nil
	}
	if c.policy == PolicyLRU {
		c.order.MoveToFront(el)
	}
	return el.Value.(*entry).payload
}

// Put stores a payload for path, evicting per policy if the cache is full.
// Storing an existing path replaces its payload.
func (c *Cache) Put(path string, payload *files.FileData) {
	if el, ok := c.index[path]; ok {
		el.Value.(*entry).payload = payload
		if c.policy == PolicyLRU {
			c.order.MoveToFront(el)
		}
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*entry).path)
		}
	}

	c.index[path] = c.order.PushFront(&entry{path: path, payload: payload})
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return c.order.Len()
}
