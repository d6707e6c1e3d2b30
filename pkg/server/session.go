package server

import (
	"sync"
	"time"

	"github.com/crystal-mush/gosoul/pkg/events"
	"github.com/crystal-mush/gosoul/pkg/soul"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// TransportType identifies the kind of transport a Session uses.
type TransportType int

const (
	TransportTCP       TransportType = iota // Line-based TCP
	TransportWebSocket                      // WebSocket (JSON events)
)

// String returns the transport label used in logs and metrics.
func (t TransportType) String() string {
	if t == TransportWebSocket {
		return "websocket"
	}
	return "tcp"
}

// SessionState tracks where a connection is in its lifecycle.
type SessionState int

const (
	StateLogin   SessionState = iota // Awaiting name/gender
	StateGender                      // Name given, awaiting gender
	StatePlaying                     // In the world
)

// Session represents a single client connection. Each session owns a Soul so
// pronoun memory ("kiss her") is private to the player. It implements
// events.Subscriber so it can receive events from the bus.
type Session struct {
	ID        int
	Addr      string
	Transport TransportType
	State     SessionState
	Player    *world.Object
	Soul      *soul.Soul
	ConnTime  time.Time
	LastCmd   time.Time
	CmdCount  int

	// SendFunc delivers a line of text to the client. Set by the transport.
	SendFunc func(msg string)
	// ReceiveFunc overrides the default event-to-text delivery (used by the
	// WebSocket transport to send structured JSON instead).
	ReceiveFunc func(ev events.Event)

	loginName string

	mu     sync.Mutex
	closed bool
}

// Send writes a line of text to the client.
func (s *Session) Send(msg string) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed || s.SendFunc == nil {
		return
	}
	s.SendFunc(msg)
}

// Receive implements events.Subscriber.
func (s *Session) Receive(ev events.Event) {
	if s.ReceiveFunc != nil {
		s.ReceiveFunc(ev)
		return
	}
	s.Send(ev.Text)
}

// Closed implements events.Subscriber.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close marks the session as closed. The transport tears down the network
// connection; the bus drops the subscriber on its next sweep.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
