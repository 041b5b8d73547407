// ABOUTME: WebSocket control server
// ABOUTME: Exposes speed, playback, and status operations over /pulseplay
package control

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/Pulseplay-Audio/pulseplay-go/pkg/player"
	"github.com/gorilla/websocket"
)

// Server accepts control connections and drives the engine on their
// behalf. Playback runs in its own goroutine; at most one session is
// active at a time.
type Server struct {
	engine   *player.Engine
	addr     string
	httpSrv  *http.Server
	listener net.Listener
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc

	mu        sync.Mutex
	playing   bool
	lastStats player.Stats
	lastErr   string
}

// NewServer creates a control server for the engine on the given port.
func NewServer(engine *player.Engine, port int) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		engine: engine,
		addr:   fmt.Sprintf(":%d", port),
		ctx:    ctx,
		cancel: cancel,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/pulseplay", s.handleWS)
	s.httpSrv = &http.Server{Handler: mux}

	return s
}

// Start begins serving. It returns once the listener is bound.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("control: listen on %s: %w", s.addr, err)
	}
	s.listener = listener

	log.Printf("Control server listening on %s", listener.Addr())

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Control server error: %v", err)
		}
	}()

	return nil
}

// Addr returns the bound listener address. Valid after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down and cancels any active session.
func (s *Server) Stop() {
	s.cancel()
	s.httpSrv.Close()
}

// handleWS upgrades the connection and serves control messages until the
// client disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("Control client connected: %s", conn.RemoteAddr())

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Control client gone: %v", err)
			return
		}

		reply := s.handleMessage(msg)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("Control reply failed: %v", err)
			return
		}
	}
}

// handleMessage dispatches one control message and builds the reply.
func (s *Server) handleMessage(msg Message) Message {
	switch msg.Type {
	case "speed/set":
		var req SpeedSet
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorReply(fmt.Sprintf("bad speed/set payload: %v", err))
		}
		s.engine.SetSpeed(req.Speed)
		return reply("speed/ack", SpeedSet{Speed: s.engine.Speed()})

	case "playback/start":
		var req PlaybackStart
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorReply(fmt.Sprintf("bad playback/start payload: %v", err))
		}
		if req.Path == "" {
			return errorReply("playback/start requires a path")
		}
		if !s.beginPlayback() {
			return errorReply("a session is already active")
		}
		go s.runPlayback(req.Path)
		return reply("playback/ack", PlaybackAck{SessionAccepted: true, Path: req.Path})

	case "status/get":
		return reply("status/report", s.status())

	default:
		return errorReply(fmt.Sprintf("unknown message type: %s", msg.Type))
	}
}

// beginPlayback marks a session active; false if one already is.
func (s *Server) beginPlayback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing {
		return false
	}
	s.playing = true
	return true
}

// runPlayback drives one session and records its outcome.
func (s *Server) runPlayback(path string) {
	stats, err := s.engine.Play(s.ctx, path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.lastStats = stats
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
}

// status snapshots the engine state for a status/report reply.
func (s *Server) status() StatusReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := "idle"
	if s.playing {
		state = "playing"
	}

	return StatusReport{
		Speed:          s.engine.Speed(),
		State:          state,
		SamplesPlayed:  s.lastStats.SamplesPlayed,
		SamplesSkipped: s.lastStats.SamplesSkipped,
		SkippedPercent: s.lastStats.SkippedPercent(),
		LastError:      s.lastErr,
	}
}

func reply(msgType string, payload interface{}) Message {
	raw, _ := json.Marshal(payload)
	return Message{Type: msgType, Payload: raw}
}

func errorReply(text string) Message {
	return reply("error", ErrorReply{Message: text})
}
