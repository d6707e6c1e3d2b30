package server

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"
)

// Server is the TCP game server, with an optional web transport beside it.
type Server struct {
	Game *Game

	mu        sync.Mutex
	listener  net.Listener
	webServer *WebServer
	stopWatch func()
}

// NewServer creates a server around the game.
func NewServer(game *Game) *Server {
	return &Server{Game: game}
}

// Start begins listening for connections and blocks until Stop is called.
func (s *Server) Start() error {
	if s.Game.Conf.SocialsFile != "" {
		if err := s.Game.LoadSocialsFile(s.Game.Conf.SocialsFile); err != nil {
			return err
		}
	}
	stop, err := s.Game.WatchSocials()
	if err != nil {
		return fmt.Errorf("socials watcher: %w", err)
	}
	s.stopWatch = stop

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Game.Conf.Port))
	if err != nil {
		return fmt.Errorf("listener: %w", err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	log.Printf("Listening on port %d", s.Game.Conf.Port)

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	if s.Game.Conf.WebEnabled {
		s.webServer = NewWebServer(s.Game, s.Game.Conf)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.webServer.Start(); err != nil {
				errCh <- fmt.Errorf("web server: %w", err)
			}
		}()
	}

	s.acceptLoop(ln)

	wg.Wait()
	select {
	case err := <-errCh:
		return err
	default:
	}
	return nil
}

// acceptLoop accepts connections on the listener until it is closed.
func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("Accept error: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// Stop closes the listeners and the socials watcher.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		s.listener.Close()
	}
	if s.webServer != nil {
		s.webServer.Stop()
	}
	if s.stopWatch != nil {
		s.stopWatch()
	}
}

// handleConnection manages a single TCP client lifecycle.
func (s *Server) handleConnection(conn net.Conn) {
	game := s.Game
	sess := game.NewSession(TransportTCP, conn.RemoteAddr().String())
	sess.ConnTime = time.Now()
	sess.SendFunc = func(msg string) {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\r\n"
		}
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		conn.Write([]byte(msg))
	}
	if game.Metrics != nil {
		game.Metrics.connectionsTotal.WithLabelValues("tcp").Inc()
	}
	log.Printf("[%d] New connection from %s", sess.ID, sess.Addr)

	defer func() {
		game.RemoveSession(sess)
		conn.Close()
		log.Printf("[%d] Connection closed from %s", sess.ID, sess.Addr)
	}()

	sess.Send(game.Conf.WelcomeText)

	idle := game.Conf.IdleDuration()
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 8192), 8192)
	for {
		if idle > 0 {
			conn.SetReadDeadline(time.Now().Add(idle))
		}
		if !scanner.Scan() {
			return
		}
		if sess.Closed() {
			return
		}
		line := strings.TrimRight(scanner.Text(), "\r\n")
		sess.LastCmd = time.Now()
		game.HandleLine(sess, line)
		if sess.Closed() {
			return
		}
	}
}
