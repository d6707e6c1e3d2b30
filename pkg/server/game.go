// Package server is the engine around the soul: it owns the world, the
// per-session souls, the custom-social catalog and the transports, and it
// routes parsed commands to either the soul renderer or a command handler.
package server

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/crystal-mush/gosoul/pkg/events"
	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/socialstore"
	"github.com/crystal-mush/gosoul/pkg/soul"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// Game holds the shared state all sessions operate on.
type Game struct {
	Conf    Config
	World   *World
	Catalog *soul.Catalog
	Bus     *events.Bus
	Store   *socialstore.Store // nil when persistence is disabled
	Metrics *Metrics           // nil until the web transport starts

	mu       sync.Mutex
	sessions map[*Session]bool
	nextID   int
}

// NewGame creates a game around a loaded world.
func NewGame(cfg Config, w *World) *Game {
	return &Game{
		Conf:     cfg,
		World:    w,
		Catalog:  soul.NewCatalog(),
		Bus:      events.NewBus(),
		sessions: make(map[*Session]bool),
	}
}

// OpenStore attaches the bbolt social store and loads its contents into the
// catalog.
func (g *Game) OpenStore(path string) error {
	store, err := socialstore.Open(path)
	if err != nil {
		return err
	}
	n, err := store.LoadInto(g.Catalog)
	if err != nil {
		store.Close()
		return err
	}
	if n > 0 {
		log.Printf("store: loaded %d custom socials from %s", n, path)
	}
	g.Store = store
	return nil
}

// LoadSocialsFile loads the socials YAML file into the catalog, replacing any
// previously file-loaded socials.
func (g *Game) LoadSocialsFile(path string) error {
	if err := g.Catalog.Load(path); err != nil {
		return err
	}
	log.Printf("socials: loaded %d custom socials from %s", len(g.Catalog.CustomNames()), path)
	if g.Store != nil {
		if _, err := g.Store.LoadInto(g.Catalog); err != nil {
			return err
		}
	}
	return nil
}

// NewSession registers a fresh session for a transport.
func (g *Game) NewSession(transport TransportType, addr string) *Session {
	g.mu.Lock()
	g.nextID++
	id := g.nextID
	g.mu.Unlock()

	s := &Session{
		ID:        id,
		Addr:      addr,
		Transport: transport,
		State:     StateLogin,
		Soul:      soul.NewWithCatalog(g.Catalog),
	}
	g.mu.Lock()
	g.sessions[s] = true
	g.mu.Unlock()
	return s
}

// RemoveSession takes the session out of the world and out of the registry.
func (g *Game) RemoveSession(s *Session) {
	if s.Player != nil {
		room := s.Player.Location
		g.Bus.Unsubscribe(s.Player, s)
		s.Player.Move(nil)
		if room != nil {
			g.Bus.EmitToRoom(room, events.Event{
				Type:   events.EvDisconnect,
				Source: s.Player,
				Text:   lang.Capital(s.Player.Title) + " leaves the world.",
			})
		}
		s.Player = nil
	}
	s.Close()
	g.mu.Lock()
	delete(g.sessions, s)
	g.mu.Unlock()
	g.Bus.Cleanup()
}

// SessionCounts returns the number of active sessions per transport.
func (g *Game) SessionCounts() (tcp, websocket int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for s := range g.sessions {
		if s.Transport == TransportWebSocket {
			websocket++
		} else {
			tcp++
		}
	}
	return tcp, websocket
}

// Sessions returns a snapshot of the active sessions.
func (g *Game) Sessions() []*Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Session, 0, len(g.sessions))
	for s := range g.sessions {
		out = append(out, s)
	}
	return out
}

// HandleLine processes one line of client input, driving the login state
// machine until the session is in the world.
func (g *Game) HandleLine(s *Session, line string) {
	line = strings.TrimSpace(line)
	switch s.State {
	case StateLogin:
		g.handleName(s, line)
	case StateGender:
		g.handleGender(s, line)
	default:
		g.Dispatch(s, line)
	}
}

func (g *Game) handleName(s *Session, name string) {
	name = strings.TrimSpace(name)
	if !validPlayerName(name) {
		s.Send("That name won't do. Letters only, 2 to 20 of them. What is your name?")
		return
	}
	lowered := strings.ToLower(name)
	g.mu.Lock()
	taken := false
	for other := range g.sessions {
		if other.Player != nil && other.Player.Name == lowered {
			taken = true
			break
		}
	}
	g.mu.Unlock()
	if taken {
		s.Send("Someone of that name is already here. What is your name?")
		return
	}
	s.loginName = name
	s.State = StateGender
	s.Send("Male, female or neuter? (m/f/n)")
}

func (g *Game) handleGender(s *Session, answer string) {
	gender, err := lang.ParseGender(answer)
	if err != nil {
		s.Send("Male, female or neuter? (m/f/n)")
		return
	}
	player := world.NewLiving(s.loginName, gender)
	s.Player = player
	s.State = StatePlaying

	g.Bus.Subscribe(player, s)
	player.Move(g.World.Start)
	g.Bus.EmitToRoom(g.World.Start, events.Event{
		Type:   events.EvConnect,
		Source: player,
		Text:   lang.Capital(player.Title) + " appears out of thin air.",
	}, player)
	log.Printf("[%d] %s enters the world in %s", s.ID, player.Name, g.World.Start.Name)

	s.Send(fmt.Sprintf("Welcome, %s. Type 'help' for a list of commands.", player.Title))
	s.Send("")
	g.showRoom(s)
}

func validPlayerName(name string) bool {
	if len(name) < 2 || len(name) > 20 {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
