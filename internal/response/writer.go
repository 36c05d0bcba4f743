// Package response serializes a complete HTTP response into one buffer and
// writes it to the connection in a single call.
//
// The wire shape follows the original contract exactly: bare "\n" line
// endings (not "\r\n"), and a fixed header sequence of Date, Connection,
// Content-Length and Content-Type. The Date value is rendered in asctime
// form and carries its own trailing newline.
package response

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"webserver/internal/headers"
)

// MaxResponseSize caps the whole serialized response, headers and body
// included. Larger responses are an error and nothing is written.
const MaxResponseSize = 262144 // 2**18

type Writer struct {
	conn io.Writer
	now  func() time.Time
}

func NewWriter(conn io.Writer) *Writer {
	return &Writer{
		conn: conn,
		now:  time.Now,
	}
}

// Send builds the response for status with the given content type and body
// and writes it to the connection in one call, returning the bytes written.
// The body is copied byte for byte, so binary payloads survive intact.
func (w *Writer) Send(status StatusCode, contentType string, body []byte) (int, error) {
	date := w.now().Format(time.ANSIC) + "\n"

	h := headers.NewHeaders()
	h.Set("Date", date)
	h.Set("Connection", "close")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set("Content-Type", contentType)

	buf := make([]byte, 0, MaxResponseSize)
	buf = append(buf, status.StatusLine()...)
	buf = append(buf, '\n')
	buf = h.AppendTo(buf)
	buf = append(buf, '\n')

	if len(buf)+len(body) > MaxResponseSize {
		return 0, fmt.Errorf("response of %d bytes exceeds %d byte limit", len(buf)+len(body), MaxResponseSize)
	}
	buf = append(buf, body...)

	n, err := w.conn.Write(buf)
	if err != nil {
		log.Printf("Error sending response: %v", err)
		return n, fmt.Errorf("sending response: %w", err)
	}
	return n, nil
}
