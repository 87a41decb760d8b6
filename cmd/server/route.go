package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_ROUTE = "/route"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.WalkServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_ROUTE, s.WalkServer.HandleRoute())
}
