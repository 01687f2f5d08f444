package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solairajan18/solai-gateway/internal/knowledge"
	"github.com/solairajan18/solai-gateway/internal/model/chat"
	"github.com/solairajan18/solai-gateway/internal/store"
)

// FallbackReply is returned when the model fails or produces nothing.
const FallbackReply = "Sorry, I couldn't generate a response."

// ErrEmptyMessage rejects blank chat messages before any state changes.
var ErrEmptyMessage = errors.New("empty message")

// Generator is the remote model gateway as seen by the orchestrator.
type Generator interface {
	GenerateReply(ctx context.Context, history []chat.Turn, userText string) (string, error)
}

// Reply is the successful outcome of one chat message.
type Reply struct {
	SessionID string
	Message   string
	Role      string
	TS        time.Time
}

// Service orchestrates one chat message end to end: resolve the session,
// answer from the knowledge base or the model, record both turns and
// persist the transcript.
//
// Reply policy: the knowledge base is consulted first and the model is the
// fallback on a miss. Model failures degrade further to FallbackReply; they
// are never surfaced to the client as hard errors.
type Service struct {
	store *store.Store
	kb    *knowledge.Base
	model Generator
}

// NewService wires the orchestrator. model may be nil when the gateway runs
// without credentials; knowledge base misses then yield FallbackReply.
func NewService(sessions *store.Store, kb *knowledge.Base, model Generator) *Service {
	return &Service{store: sessions, kb: kb, model: model}
}

// HandleMessage processes one inbound chat message. sessionID may be empty,
// in which case a fresh one is minted. The error return is exclusively
// ErrEmptyMessage; every other failure mode resolves to a usable reply.
func (s *Service) HandleMessage(ctx context.Context, sessionID, text string) (Reply, error) {
	userText := strings.TrimSpace(text)
	if userText == "" {
		return Reply{}, ErrEmptyMessage
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history := s.store.GetOrLoad(sessionID)
	s.store.Append(sessionID, chat.NewTurn(chat.RoleUser, userText))

	assistantText := s.resolveReply(ctx, sessionID, history, userText)

	assistantTurn := chat.NewTurn(chat.RoleAssistant, assistantText)
	s.store.Append(sessionID, assistantTurn)
	s.store.Persist(sessionID)

	return Reply{
		SessionID: sessionID,
		Message:   assistantText,
		Role:      chat.RoleAssistant,
		TS:        assistantTurn.TS,
	}, nil
}

// History returns the session's transcript. Unknown ids yield an empty
// history without creating the session.
func (s *Service) History(_ context.Context, sessionID string) []chat.Turn {
	return s.store.History(sessionID)
}

func (s *Service) resolveReply(ctx context.Context, sessionID string, history []chat.Turn, userText string) string {
	if reply, ok := s.kb.Match(userText); ok {
		return reply
	}

	if s.model == nil {
		return FallbackReply
	}

	log.Printf("[chat] calling model for session %s", sessionID)
	reply, err := s.model.GenerateReply(ctx, history, userText)
	if err != nil {
		log.Printf("[chat] model call failed for session %s: %v", sessionID, err)
		return FallbackReply
	}
	return reply
}
