package server

import (
	"webserver/internal/request"
	"webserver/internal/response"
)

type Handler func(w *response.Writer, req *request.Request)
