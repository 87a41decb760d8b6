package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antroute/server"
)

type Server struct {
	router     *way.Router
	WalkServer *server.WalkServer
}

func newServer(cfg server.Config) (*Server, error) {
	route, err := cfg.LoadRoute()
	if err != nil {
		return nil, err
	}
	s := &Server{
		WalkServer: server.NewWalkServer(route, cfg.Interval),
	}
	s.routes()
	return s, nil
}

func main() {
	cfg, err := server.ConfigFrom(os.Getenv)
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.Level)

	s, err := newServer(cfg)
	if err != nil {
		log.Fatalf("loading route: %v", err)
	}
	log.Infof("serving route %s every %s on :%s", server.Format(s.WalkServer.Route), cfg.Interval, cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, s.router))
}
