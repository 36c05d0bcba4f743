package response

type StatusCode int

const (
	StatusOK       StatusCode = 200
	StatusNotFound StatusCode = 404
)

// StatusLine returns the full status line for the code, without terminator.
func (s StatusCode) StatusLine() string {
	switch s {
	case StatusOK:
		return "HTTP/1.1 200 OK"
	case StatusNotFound:
		return "HTTP/1.1 404 NOT FOUND"
	default:
		return ""
	}
}
