package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/crystal-mush/gosoul/pkg/events"
)

// WSMessage is the JSON envelope exchanged with WebSocket clients.
type WSMessage struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
	Verb    string `json:"verb,omitempty"`
	Source  string `json:"source,omitempty"`
	Text    string `json:"text,omitempty"`
}

// WebServer provides HTTP/WebSocket transport alongside the TCP game server.
type WebServer struct {
	game     *Game
	httpSrv  *http.Server
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// NewWebServer creates a web server bound to the game.
func NewWebServer(game *Game, cfg Config) *WebServer {
	ws := &WebServer{
		game: game,
		mux:  http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	ws.mux.HandleFunc("GET /ws", ws.handleWebSocket)
	ws.mux.HandleFunc("GET /health", ws.handleHealth)

	game.Metrics = NewMetrics(game, time.Now())
	ws.mux.Handle("GET /metrics", game.Metrics.Handler())

	ws.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.WebHost, cfg.WebPort),
		Handler: ws.mux,
	}
	return ws
}

// Start runs the HTTP server until Stop is called.
func (ws *WebServer) Start() error {
	log.Printf("Web transport on %s", ws.httpSrv.Addr)
	if err := ws.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down.
func (ws *WebServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ws.httpSrv.Shutdown(ctx)
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	tcp, wsc := ws.game.SessionCounts()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":             "ok",
		"mud_name":           ws.game.Conf.MudName,
		"sessions_tcp":       tcp,
		"sessions_websocket": wsc,
	})
}

// handleWebSocket upgrades an HTTP connection and creates a game session for
// the client.
func (ws *WebServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	wc := &wsConn{conn: conn}
	sess := ws.game.NewSession(TransportWebSocket, r.RemoteAddr)
	sess.ConnTime = time.Now()
	sess.SendFunc = func(msg string) {
		wc.sendJSON(WSMessage{Type: "text", Text: msg})
	}
	sess.ReceiveFunc = func(ev events.Event) {
		msg := WSMessage{Type: ev.Type.String(), Verb: ev.Verb, Text: ev.Text}
		if ev.Source != nil {
			msg.Source = ev.Source.Name
		}
		wc.sendJSON(msg)
	}
	if ws.game.Metrics != nil {
		ws.game.Metrics.connectionsTotal.WithLabelValues("websocket").Inc()
	}
	log.Printf("[%d] New websocket connection from %s", sess.ID, sess.Addr)

	sess.Send(ws.game.Conf.WelcomeText)
	go ws.readLoop(sess, wc)
}

// wsConn holds the WebSocket connection and its write mutex.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (wc *wsConn) sendJSON(msg WSMessage) {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	wc.conn.WriteJSON(msg)
}

func (ws *WebServer) readLoop(sess *Session, wc *wsConn) {
	defer func() {
		ws.game.RemoveSession(sess)
		wc.conn.Close()
		log.Printf("[%d] Websocket closed from %s", sess.ID, sess.Addr)
	}()

	for {
		_, msgBytes, err := wc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[%d] websocket read error: %v", sess.ID, err)
			}
			return
		}
		sess.LastCmd = time.Now()

		var msg WSMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			wc.sendJSON(WSMessage{Type: "error", Text: "Invalid JSON message"})
			continue
		}
		if msg.Type != "command" {
			wc.sendJSON(WSMessage{Type: "error", Text: fmt.Sprintf("Unknown message type: %s", msg.Type)})
			continue
		}
		ws.game.HandleLine(sess, msg.Command)
		if sess.Closed() {
			return
		}
	}
}
