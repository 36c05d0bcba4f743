package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"webserver/internal/cache"
	"webserver/internal/router"
	"webserver/internal/server"
	"webserver/internal/static"
)

const (
	port        = 3490
	serverFiles = "./serverfiles"
	serverRoot  = "./serverroot"
	cacheSize   = 10
)

func main() {
	c := cache.New(cacheSize, cache.PolicyLRU)
	resp := static.NewResponder(serverRoot, serverFiles, c)

	srv, err := server.Serve(port, router.New(resp))
	if err != nil {
		log.Fatalf("Fatal error getting listening socket: %v", err)
	}
	defer srv.Close()
	log.Println("Waiting for connections on port", port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Server stopped")
}
