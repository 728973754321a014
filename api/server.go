package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"pongrelay/util"
	"pongrelay/ws"
)

type Server struct {
	config  *util.Config
	manager *ws.Manager
	handler http.Handler
}

func NewServer(config *util.Config, logger *logrus.Logger) *Server {
	manager := ws.NewManager(ws.NewRegistry(), config.Origins(), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", manager.ServeWS)
	mux.HandleFunc("/rooms/check", manager.CheckRoom)
	mux.Handle("/", http.FileServer(http.Dir(config.StaticDir)))

	c := cors.New(cors.Options{
		AllowedOrigins: config.Origins(),
		AllowedMethods: []string{http.MethodGet},
	})

	return &Server{
		config:  config,
		manager: manager,
		handler: c.Handler(mux),
	}
}

// Handler exposes the routed stack for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() error {
	return http.ListenAndServe(fmt.Sprintf(":%v", s.config.Port), s.handler)
}
