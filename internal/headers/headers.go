// Package headers holds a response header block. Field order is the order
// of first insertion, because the wire contract fixes the header sequence.
package headers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Headers struct {
	order []string
	vals  map[string]string
}

func NewHeaders() *Headers {
	return &Headers{
		vals: map[string]string{},
	}
}

// Set stores a value for key. Setting an existing key replaces its value and
// keeps its position.
func (h *Headers) Set(key, value string) {
	key = strings.ToLower(key)
	if _, ok := h.vals[key]; !ok {
		h.order = append(h.order, key)
	}
	h.vals[key] = value
}

func (h *Headers) Get(key string) (value string) {
	return h.vals[strings.ToLower(key)]
}

func (h *Headers) Del(key string) {
	key = strings.ToLower(key)
	if _, ok := h.vals[key]; !ok {
		return
	}
	delete(h.vals, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// AppendTo serializes the block onto buf, one "Key: value" line per field
// with bare newline terminators. A value that already ends in a newline is
// not terminated again; the Date value carries its own (asctime shape).
func (h *Headers) AppendTo(buf []byte) []byte {
	caser := cases.Title(language.English)
	for _, k := range h.order {
		v := h.vals[k]
		buf = append(buf, caser.String(k)...)
		buf = append(buf, ": "...)
		buf = append(buf, v...)
		if !strings.HasSuffix(v, "\n") {
			buf = append(buf, '\n')
		}
	}
	return buf
}
