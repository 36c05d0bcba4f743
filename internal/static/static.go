// Package static serves resource files from disk, fronted by the cache.
package static

import (
	"errors"
	"log"
	"path"
	"path/filepath"

	"webserver/internal/cache"
	"webserver/internal/files"
	"webserver/internal/response"
)

// notFoundPage is served when 404.html itself cannot be loaded, so a
// mis-deployed files root degrades to a plain response instead of taking
// the process down.
var notFoundPage = []byte("404 Not Found\n")

// Responder resolves request paths against the document root and emits
// complete responses. The fixed 404 page lives under a separate system
// files root.
type Responder struct {
	docRoot   string
	filesRoot string
	cache     *cache.Cache
}

func NewResponder(docRoot, filesRoot string, c *cache.Cache) *Responder {
	return &Responder{
		docRoot:   docRoot,
		filesRoot: filesRoot,
		cache:     c,
	}
}

// ServeFile resolves requestPath under the document root and sends its
// contents with a 200. Request paths are rooted and cleaned before joining,
// so "/../"-style segments cannot escape the root. A path that does not
// resolve to a file gets the 404 response instead.
func (r *Responder) ServeFile(w *response.Writer, requestPath string) {
	clean := path.Clean("/" + requestPath)
	filePath := filepath.Join(r.docRoot, filepath.FromSlash(clean))

	payload, err := r.load(filePath)
	if err != nil {
		if !errors.Is(err, files.ErrNotFound) {
			log.Printf("Error loading %s: %v", filePath, err)
		}
		r.ServeNotFound(w)
		return
	}

	w.Send(response.StatusOK, files.MimeType(filePath), payload.Data)
}

// ServeNotFound sends the fixed 404 page from the system files root.
func (r *Responder) ServeNotFound(w *response.Writer) {
	filePath := filepath.Join(r.filesRoot, "404.html")

	payload, err := r.load(filePath)
	if err != nil {
		log.Printf("Error loading 404 page: %v", err)
		w.Send(response.StatusNotFound, "text/plain", notFoundPage)
		return
	}

	w.Send(response.StatusNotFound, files.MimeType(filePath), payload.Data)
}

// load consults the cache before falling back to disk, filling it on a
// miss. Entries are keyed by resolved file path.
func (r *Responder) load(filePath string) (*files.FileData, error) {
	if payload := r.cache.Get(filePath); payload != nil {
		return payload, nil
	}

	payload, err := files.Load(filePath)
	if err != nil {
		return nil, err
	}
	r.cache.Put(filePath, payload)

	return payload, nil
}
