// Package server pushes simulation frames to a browser renderer over a
// websocket. One hub per connection: the client configures a run,
// starts it, and receives downsampled field frames until the horizon.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn)
	defer hub.Close()

	log.WithField("remote", r.RemoteAddr).Info("client connected")

	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("client disconnected")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)

	log.WithField("addr", s.addr).Info("frame server listening")
	return http.ListenAndServe(s.addr, mux)
}
