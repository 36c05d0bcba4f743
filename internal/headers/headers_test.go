package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGetDel(t *testing.T) {
	h := NewHeaders()
	h.Set("Content-Type", "text/html")
	assert.Equal(t, "text/html", h.Get("content-type"))
	assert.Equal(t, "text/html", h.Get("Content-Type"))

	// Test: replacing keeps the value, not a combined list
	h.Set("Content-Type", "text/plain")
	assert.Equal(t, "text/plain", h.Get("Content-Type"))

	h.Del("Content-Type")
	assert.Equal(t, "", h.Get("Content-Type"))

	// Test: missing key reads empty
	assert.Equal(t, "", h.Get("Host"))
}

func TestAppendToOrderAndCasing(t *testing.T) {
	h := NewHeaders()
	h.Set("connection", "close")
	h.Set("content-length", "5")
	h.Set("content-type", "text/html")

	got := string(h.AppendTo(nil))
	assert.Equal(t, "Connection: close\nContent-Length: 5\nContent-Type: text/html\n", got)

	// Test: replacing a value keeps its original position
	h.Set("content-length", "12")
	got = string(h.AppendTo(nil))
	assert.Equal(t, "Connection: close\nContent-Length: 12\nContent-Type: text/html\n", got)
}

func TestAppendToDateNewline(t *testing.T) {
	// A Date value carries its own trailing newline and must not be
	// terminated twice.
	h := NewHeaders()
	h.Set("Date", "Mon Jan  2 15:04:05 2006\n")
	h.Set("Connection", "close")

	got := string(h.AppendTo(nil))
	assert.Equal(t, "Date: Mon Jan  2 15:04:05 2006\nConnection: close\n", got)
}
