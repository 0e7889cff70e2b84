// Package server hosts independent game sessions for many connections.
// Sessions never share a world; the server only tracks who is connected,
// owns the shared score store and relays notices such as a new record or
// a pending shutdown.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixelshooter/internal/game"
	"github.com/tomz197/pixelshooter/internal/store"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation, enabling
// testing and a single-player host.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	Recorder(clientID int) game.Recorder
	Leaderboard() []store.Entry
	Players() int
}

// Scoreboard is the persistent score store the server shares between
// sessions. store.Scores implements it.
type Scoreboard interface {
	game.Recorder
	Leaderboard() []store.Entry
}

// Server tracks connected clients around a shared Scoreboard.
type Server struct {
	scores       Scoreboard
	logger       *log.Logger
	clients      map[int]*ClientHandle
	nextClientID int
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (records, shutdown)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // Who set the record
	Score    int
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventNewRecord ClientEventType = iota
	EventServerShutdown
)

// NewServer creates a server around scores. A nil logger discards.
func NewServer(scores Scoreboard, logger *log.Logger) *Server {
	return &Server{
		scores:       scores,
		logger:       logger,
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown}, 0)

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle

	if s.logger != nil {
		s.logger.Info("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	}
	return handle
}

// UnregisterClient removes a client from the server and closes its
// event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)

	if s.logger != nil {
		s.logger.Info("client unregistered", "id", clientID, "players", len(s.clients))
	}
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Leaderboard returns the shared leaderboard.
func (s *Server) Leaderboard() []store.Entry {
	return s.scores.Leaderboard()
}

// Recorder returns the recorder a client's session reports to. Results go
// to the shared store; beating the server-wide high score notifies every
// other client.
func (s *Server) Recorder(clientID int) game.Recorder {
	return &clientRecorder{server: s, clientID: clientID}
}

type clientRecorder struct {
	server   *Server
	clientID int
}

func (r *clientRecorder) HighScore() int {
	return r.server.scores.HighScore()
}

func (r *clientRecorder) RecordGame(res game.Result) {
	// Serialize so two sessions ending together cannot both claim the record.
	r.server.mu.Lock()
	prev := r.server.scores.HighScore()
	r.server.scores.RecordGame(res)
	r.server.mu.Unlock()

	if res.Score > prev {
		r.server.broadcast(ClientEvent{Type: EventNewRecord, Username: res.Name, Score: res.Score}, r.clientID)
	}
}

// broadcast sends ev to every client except skipID without blocking.
// Clients with a full event queue miss the event.
func (s *Server) broadcast(ev ClientEvent, skipID int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, handle := range s.clients {
		if id == skipID {
			continue
		}
		select {
		case handle.EventsCh <- ev:
		default:
		}
	}
}
