// Package request reads a raw HTTP request off a connection and extracts the
// method and path from its first line.
package request

import (
	"io"
)

const (
	// maxRequestRead bounds the single read of the raw request. Requests
	// that span more than one read are not reassembled.
	maxRequestRead = 65536 - 1

	// Bounds on the extracted tokens. A token over its bound marks the
	// whole line malformed.
	maxMethodLen = 9
	maxPathLen   = 106
)

// Request is the parsed first line of a raw request. A malformed line leaves
// both fields empty, which routes to 404 downstream. Headers and body are
// not extracted.
type Request struct {
	Method string
	Path   string
}

// FromReader performs exactly one read of up to 64 KiB - 1 bytes and parses
// what arrived. A read that yields no data is an error; the caller logs it
// and sends nothing.
func FromReader(r io.Reader) (*Request, error) {
	buf := make([]byte, maxRequestRead)
	n, err := r.Read(buf)
	if n == 0 && err != nil {
		return nil, err
	}
	return Parse(buf[:n]), nil
}

// Parse extracts the first two whitespace-delimited tokens of the raw
// request as method and path. Anything after them, the version token
// included, is ignored.
func Parse(raw []byte) *Request {
	method, rest := nextToken(raw)
	path, _ := nextToken(rest)

	if len(method) == 0 || len(path) == 0 ||
		len(method) > maxMethodLen || len(path) > maxPathLen {
		return &Request{}
	}

	return &Request{
		Method: string(method),
		Path:   string(path),
	}
}

func nextToken(data []byte) (token, rest []byte) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	end := start
	for end < len(data) && !isSpace(data[end]) {
		end++
	}
	return data[start:end], data[end:]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
