// Package router dispatches a parsed request to the handler for its method.
package router

import (
	"log"
	"strings"

	"webserver/internal/request"
	"webserver/internal/response"
	"webserver/internal/server"
	"webserver/internal/static"
)

const profilePrefix = "/profile/"

// New returns the handler for the server's routes: GET serves the profile
// or index page, everything else is a 404. A malformed request line parses
// to an empty method and lands on the 404 branch.
func New(resp *static.Responder) server.Handler {
	return func(w *response.Writer, req *request.Request) {
		switch req.Method {
		case "GET":
			handleGet(w, resp, req.Path)
		case "POST":
			// Posted data is never persisted.
			log.Printf("POST %s", req.Path)
			resp.ServeNotFound(w)
		default:
			resp.ServeNotFound(w)
		}
	}
}

// handleGet serves profile.html for /profile/<token> with a non-empty
// token, and index.html for every other path. The token itself never flows
// into the response.
func handleGet(w *response.Writer, resp *static.Responder, path string) {
	log.Printf("GET %s", path)

	if strings.HasPrefix(path, profilePrefix) && len(path) > len(profilePrefix) {
		resp.ServeFile(w, "/profile.html")
		return
	}
	resp.ServeFile(w, "/index.html")
}
