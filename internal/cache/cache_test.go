package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webserver/internal/files"
)

func payload(s string) *files.FileData {
	return &files.FileData{Data: []byte(s), Size: len(s)}
}

func TestGetPut(t *testing.T) {
	c := New(10, PolicyLRU)

	// Test: miss
	assert.Nil(t, c.Get("/a"))

	c.Put("/a", payload("aaa"))
	got := c.Get("/a")
	require.NotNil(t, got)
	assert.Equal(t, []byte("aaa"), got.Data)
	assert.Equal(t, 1, c.Len())

	// Test: replacing does not grow the cache
	c.Put("/a", payload("AAA"))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []byte("AAA"), c.Get("/a").Data)
}

func TestLRUEviction(t *testing.T) {
	c := New(2, PolicyLRU)
	c.Put("/a", payload("a"))
	c.Put("/b", payload("b"))

	// Touch /a so /b becomes least recently used
	require.NotNil(t, c.Get("/a"))

	c.Put("/c", payload("c"))
	assert.Equal(t, 2, c.Len())
	assert.Nil(t, c.Get("/b"))
	assert.NotNil(t, c.Get("/a"))
	assert.NotNil(t, c.Get("/c"))
}

func TestFIFOEviction(t *testing.T) {
	c := New(2, PolicyFIFO)
	c.Put("/a", payload("a"))
	c.Put("/b", payload("b"))

	// A read does not refresh under FIFO; /a is still the oldest
	require.NotNil(t, c.Get("/a"))

	c.Put("/c", payload("c"))
	assert.Equal(t, 2, c.Len())
	assert.Nil(t, c.Get("/a"))
	assert.NotNil(t, c.Get("/b"))
	assert.NotNil(t, c.Get("/c"))
}

func TestCapacityBound(t *testing.T) {
	c := New(3, PolicyLRU)
	for _, k := range []string{"/a", "/b", "/c", "/d", "/e"} {
		c.Put(k, payload(k))
	}
	assert.Equal(t, 3, c.Len())
}
