// Package server owns the listening socket and the accept loop.
//
// Connections are handled one at a time, start to finish: a second
// connection is not read until the first has been answered and closed.
// There is no keep-alive; every connection carries exactly one
// request/response cycle.
package server

import (
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"webserver/internal/request"
	"webserver/internal/response"
)

type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	handler     Handler
}

// Serve binds the port and starts the sequential accept loop. Port 0 picks
// an ephemeral port; Addr reports the one bound.
func Serve(port int, handler Handler) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener: listener,
		handler:  handler,
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}
		log.Println("Connection accepted:", conn.RemoteAddr())

		// Handled inline: the next accept waits for this connection
		// to finish.
		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	req, err := request.FromReader(conn)
	if err != nil {
		log.Printf("Error reading request: %v", err)
		return
	}

	w := response.NewWriter(conn)
	s.handler(w, req)
}
