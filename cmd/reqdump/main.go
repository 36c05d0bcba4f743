// reqdump accepts connections one at a time and prints the request line it
// parsed, without responding. Useful for eyeballing what clients send.
package main

import (
	"fmt"
	"log"
	"net"

	"webserver/internal/request"
)

const port = ":3490"

func main() {
	listener, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("error listening: %v", err)
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", port)
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Printf("error accepting connection: %v", err)
			continue
		}
		log.Println("Connection accepted:", c.RemoteAddr())

		req, err := request.FromReader(c)
		if err != nil {
			log.Printf("error reading request: %v", err)
			c.Close()
			continue
		}

		fmt.Println("Request line:")
		fmt.Printf("- Method: %s\n", req.Method)
		fmt.Printf("- Path: %s\n", req.Path)
		c.Close()
		log.Println("Connection to", c.RemoteAddr(), "closed")
	}
}
