package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/sim"
)

const (
	// frames never carry more than this many points per axis
	maxBarPoints  = 256
	maxGridPoints = 64

	stepsPerFrame = 10
	framePeriod   = 33 * time.Millisecond
)

type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Frame is one downsampled field snapshot.
type Frame struct {
	Kind     string    `json:"kind"`
	Material string    `json:"material"`
	Time     float64   `json:"time"`
	Tmax     float64   `json:"tmax"`
	N        int       `json:"n"`
	Min      float64   `json:"t_min"`
	Max      float64   `json:"t_max"`
	Field    []float64 `json:"field"`
}

// Hub serves one connection: requests arrive on msg, replies and
// frames leave on out.
type Hub struct {
	conn    *websocket.Conn
	session *sim.Session

	msg  chan Msg
	out  chan Msg
	stop chan struct{}
	quit chan struct{}
}

func NewHub(conn *websocket.Conn) *Hub {
	return &Hub{
		conn: conn,
		msg:  make(chan Msg, 10),
		out:  make(chan Msg, 10),
		quit: make(chan struct{}),
	}
}

func (h *Hub) Close() {
	close(h.quit)
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				h.handleEnv(msg.Content)
			case "start":
				h.handleStart()
			case "stop":
				h.handleStop()
			default:
				log.WithField("type", msg.Type).Warn("unknown request type")
			}
		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.out:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Error("write failed")
			}
		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleEnv(content string) {
	// the stream goroutine owns the session while it runs
	if h.stop != nil {
		h.send(Msg{Type: "error", Content: "stop the running stream first"})
		return
	}

	cfg := config.DefaultConfig()
	if content != "" {
		if err := json.Unmarshal([]byte(content), cfg); err != nil {
			h.send(Msg{Type: "error", Content: "bad env: " + err.Error()})
			return
		}
	}

	session, err := newSession(cfg)
	if err != nil {
		h.send(Msg{Type: "error", Content: err.Error()})
		return
	}

	h.session = session
	log.WithFields(log.Fields{
		"kind":     session.Kind().String(),
		"material": cfg.Material,
		"points":   session.N(),
	}).Info("environment set")
	h.send(Msg{Type: "envSet", Content: "env is set"})
}

func newSession(cfg *config.Config) (*sim.Session, error) {
	kind, err := sim.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return sim.NewSession(kind, params)
}

func (h *Hub) handleStart() {
	if h.session == nil {
		h.send(Msg{Type: "error", Content: "env not set"})
		return
	}
	if h.stop != nil {
		h.send(Msg{Type: "error", Content: "already running"})
		return
	}
	h.stop = make(chan struct{})
	h.send(Msg{Type: "started"})
	go h.stream(h.stop)
}

func (h *Hub) handleStop() {
	if h.stop != nil {
		close(h.stop)
		h.stop = nil
	}
	h.send(Msg{Type: "stopped", Content: "stopped"})
}

// send queues a reply, giving up once the connection shuts down so
// senders never block on a full buffer after Close.
func (h *Hub) send(m Msg) bool {
	select {
	case h.out <- m:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) stream(stop chan struct{}) {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-h.quit:
			return
		case <-ticker.C:
			running := true
			for i := 0; i < stepsPerFrame; i++ {
				if !h.session.Step() {
					running = false
					break
				}
			}
			h.pushFrame()
			if !running {
				h.send(Msg{Type: "finished"})
				return
			}
		}
	}
}

func (h *Hub) pushFrame() {
	frame := buildFrame(h.session)
	data, err := json.Marshal(frame)
	if err != nil {
		log.WithError(err).Error("frame marshal failed")
		return
	}
	h.send(Msg{Type: "frame", Content: string(data)})
}

func buildFrame(s *sim.Session) Frame {
	sum := s.Summary()
	frame := Frame{
		Kind:     s.Kind().String(),
		Material: sum.Material,
		Time:     sum.Time,
		Tmax:     sum.Tmax,
		Min:      sum.Min,
		Max:      sum.Max,
	}

	if s.Kind() == sim.Plate2D {
		frame.Field, frame.N = downsampleGrid(s.Field(), s.N(), maxGridPoints)
	} else {
		frame.Field, frame.N = downsampleBar(s.Field(), maxBarPoints)
	}
	return frame
}

// downsampleBar strides the field so at most max points survive.
func downsampleBar(field []float64, max int) ([]float64, int) {
	n := len(field)
	if n <= max {
		out := make([]float64, n)
		copy(out, field)
		return out, n
	}
	stride := (n + max - 1) / max
	out := make([]float64, 0, max)
	for i := 0; i < n; i += stride {
		out = append(out, field[i])
	}
	return out, len(out)
}

// downsampleGrid strides a flattened n x n field on both axes, keeping
// row-major layout.
func downsampleGrid(field []float64, n, max int) ([]float64, int) {
	if n <= max {
		out := make([]float64, len(field))
		copy(out, field)
		return out, n
	}
	stride := (n + max - 1) / max
	m := 0
	for i := 0; i < n; i += stride {
		m++
	}
	out := make([]float64, 0, m*m)
	for j := 0; j < n; j += stride {
		for i := 0; i < n; i += stride {
			out = append(out, field[j*n+i])
		}
	}
	return out, m
}
