package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/solairajan18/solai-gateway/internal/model/chat"
	chatservice "github.com/solairajan18/solai-gateway/internal/service/chat"
)

const readTimeout = 60 * time.Second

// Handler accepts duplex chat connections and routes frames to the
// orchestrator.
type Handler struct {
	chatSvc  *chatservice.Service
	upgrader websocket.Upgrader
}

// New creates the websocket chat handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the chat websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/chat", h.handleWebSocket)
}

// inboundMessage is the decoded-once inbound frame: a history query when
// Cmd is "history", a chat message otherwise.
type inboundMessage struct {
	Cmd       string `json:"cmd"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatEnvelope struct {
	OK        bool      `json:"ok"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Role      string    `json:"role"`
	TS        time.Time `json:"ts"`
}

type historyEnvelope struct {
	OK        bool        `json:"ok"`
	SessionID string      `json:"session_id"`
	History   []chat.Turn `json:"history"`
}

type errorEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// connection serializes writes: the read loop and the ping loop share the
// underlying conn.
type connection struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// send writes one JSON frame. Write failures mean the peer is gone; they
// are logged and swallowed so the handler loop can wind down on its own.
func (c *connection) send(payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(payload); err != nil {
		log.Printf("[websocket] write failed: %v", err)
	}
}

func (c *connection) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer raw.Close()

	log.Printf("[websocket] client connected: %s", raw.RemoteAddr())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn := &connection{conn: raw}

	raw.SetReadDeadline(time.Now().Add(readTimeout))
	raw.SetPongHandler(func(string) error {
		raw.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go h.pingLoop(ctx, conn)

	for {
		_, frame, err := raw.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("[websocket] read error: %v", err)
			} else {
				log.Printf("[websocket] client disconnected: %s", raw.RemoteAddr())
			}
			return
		}

		h.handleFrame(ctx, conn, frame)
		raw.SetReadDeadline(time.Now().Add(readTimeout))
	}
}

// handleFrame decodes one inbound frame and dispatches it.
func (h *Handler) handleFrame(ctx context.Context, conn *connection, frame []byte) {
	msg, err := decodeFrame(frame)
	if err != nil {
		conn.send(errorEnvelope{Error: "invalid json"})
		return
	}

	if msg.Cmd == "history" {
		h.handleHistory(ctx, conn, msg.SessionID)
		return
	}

	h.handleChat(ctx, conn, msg)
}

// decodeFrame parses a frame permissively: a frame that is not JSON at all
// becomes a chat message carrying the raw text, while valid JSON that is
// not an object is rejected.
func decodeFrame(frame []byte) (inboundMessage, error) {
	if !json.Valid(frame) {
		return inboundMessage{Message: string(frame)}, nil
	}

	var msg inboundMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		return inboundMessage{}, err
	}
	return msg, nil
}

func (h *Handler) handleHistory(ctx context.Context, conn *connection, sessionID string) {
	if sessionID == "" {
		conn.send(errorEnvelope{Error: "session_id required for history"})
		return
	}

	history := h.chatSvc.History(ctx, sessionID)
	if history == nil {
		history = []chat.Turn{}
	}
	conn.send(historyEnvelope{OK: true, SessionID: sessionID, History: history})
}

func (h *Handler) handleChat(ctx context.Context, conn *connection, msg inboundMessage) {
	reply, err := h.chatSvc.HandleMessage(ctx, msg.SessionID, msg.Message)
	if err != nil {
		if errors.Is(err, chatservice.ErrEmptyMessage) {
			conn.send(errorEnvelope{Error: "empty message"})
			return
		}
		conn.send(errorEnvelope{Error: err.Error()})
		return
	}

	conn.send(chatEnvelope{
		OK:        true,
		SessionID: reply.SessionID,
		Message:   reply.Message,
		Role:      reply.Role,
		TS:        reply.TS,
	})
}

func (h *Handler) pingLoop(ctx context.Context, conn *connection) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}
