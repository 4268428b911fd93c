package handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"routing-demo/internal/auth"
	"routing-demo/internal/hub"
)

type WebSocketHandler struct {
	Hub       *hub.Hub
	StartedAt time.Time
}

type clientMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Write serializes writers: the reader loop replies and the hub broadcasts
// from other connections' goroutines.
func (w *wsWriter) Write(message []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.conn.WriteMessage(websocket.TextMessage, message)
}

func (w *wsWriter) Close() error {
	return w.conn.Close()
}

func (h *WebSocketHandler) Serve(c *gin.Context) {
	// The socket works anonymously; a token only names the peer in
	// broadcasts. A bad token is still rejected.
	username := "anonymous"
	if token := c.Query("token"); token != "" {
		identity, err := auth.Lookup(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			return
		}
		username = identity.Username
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	conn := &hub.Connection{Username: username, Writer: &wsWriter{conn: ws}}
	h.Hub.Register(conn)
	defer func() {
		h.Hub.Unregister(conn)
		_ = ws.Close()
	}()

	ws.SetReadLimit(1024 * 1024)
	const pongWait = 60 * time.Second
	const writeWait = 10 * time.Second
	pingPeriod := (pongWait * 9) / 10

	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	var closeOnce sync.Once
	closeDone := func() {
		closeOnce.Do(func() {
			close(done)
		})
	}
	defer closeDone()

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				deadline := time.Now().Add(writeWait)
				if err := ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					_ = ws.Close()
					return
				}
			}
		}
	}()

	h.reply(conn, gin.H{
		"type":      "welcome",
		"message":   "Connected to the routing demo websocket",
		"commands":  []string{"ping", "echo", "time", "stats", "broadcast"},
		"timestamp": time.Now().Unix(),
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// Plain text frames echo straight back.
			h.reply(conn, gin.H{
				"type":      "text_echo",
				"message":   string(data),
				"timestamp": time.Now().Unix(),
			})
			continue
		}

		switch msg.Type {
		case "ping":
			h.reply(conn, gin.H{"type": "pong", "timestamp": time.Now().Unix()})
		case "echo":
			h.reply(conn, gin.H{
				"type":      "echo_response",
				"original":  json.RawMessage(data),
				"timestamp": time.Now().Unix(),
			})
		case "time":
			now := time.Now()
			h.reply(conn, gin.H{
				"type":           "time_response",
				"server_time":    now.Format(time.RFC3339),
				"unix_timestamp": now.Unix(),
			})
		case "stats":
			h.reply(conn, gin.H{
				"type": "stats_response",
				"server_stats": gin.H{
					"active_connections": h.Hub.Count(),
					"uptime":             time.Since(h.StartedAt).Round(time.Second).String(),
				},
				"timestamp": time.Now().Unix(),
			})
		case "broadcast":
			out, _ := json.Marshal(gin.H{
				"type":      "broadcast",
				"from":      username,
				"data":      msg.Data,
				"timestamp": time.Now().Unix(),
			})
			h.Hub.Broadcast(out, conn)
		default:
			h.reply(conn, gin.H{
				"type":               "unknown_command",
				"message":            "Unknown command: " + msg.Type,
				"available_commands": []string{"ping", "echo", "time", "stats", "broadcast"},
				"timestamp":          time.Now().Unix(),
			})
		}
	}
}

func (h *WebSocketHandler) reply(conn *hub.Connection, body gin.H) {
	out, _ := json.Marshal(body)
	_ = conn.Writer.Write(out)
}
