package events

import "github.com/crystal-mush/gosoul/pkg/world"

// EventType classifies events for transport-specific encoding.
type EventType int

const (
	EvText       EventType = iota // Raw text (universal fallback)
	EvAction                      // Rendered soul action
	EvSay                         // Speech
	EvMove                        // Arrive/depart
	EvRoom                        // Room description
	EvConnect                     // Session connected
	EvDisconnect                  // Session disconnected
	EvSystem                      // Server notices
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EvText:
		return "text"
	case EvAction:
		return "action"
	case EvSay:
		return "say"
	case EvMove:
		return "move"
	case EvRoom:
		return "room"
	case EvConnect:
		return "connect"
	case EvDisconnect:
		return "disconnect"
	case EvSystem:
		return "system"
	}
	return "unknown"
}

// Event is a structured game event that flows through the event bus.
// Transports decide how to encode each event: the TCP transport uses Text,
// the WebSocket transport sends the structured fields as JSON.
type Event struct {
	Type     EventType
	Receiver *world.Object // Recipient (nil for broadcast)
	Source   *world.Object // Who generated the event
	Verb     string        // Main verb of an EvAction
	Text     string        // Pre-formatted text
}
