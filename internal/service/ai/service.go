package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/solairajan18/solai-gateway/internal/config"
	"github.com/solairajan18/solai-gateway/internal/model/chat"
	"github.com/solairajan18/solai-gateway/internal/retrieval"
)

// SystemPrompt is the fixed persona sent with every model call.
const SystemPrompt = "You are SolAI chatbot — friendly, concise, and helpful. " +
	"You answer questions about the user's skills, experience, and projects. " +
	"Respond in plain text."

const (
	// historyLimit caps how many prior turns accompany a model call.
	historyLimit = 12
	// contextTopK bounds the retrieval snippets folded into the persona.
	contextTopK = 3
)

var (
	ErrModelUnavailable = errors.New("model unavailable")
	ErrEmptyReply       = errors.New("model returned empty reply")
)

// Service wraps the remote chat-completion call behind an eino chain.
type Service struct {
	chain     compose.Runnable[map[string]any, *schema.Message]
	retriever retrieval.Retriever
}

// NewService compiles the prompt-plus-model chain. retriever may be nil:
// context augmentation is then skipped and the bare persona is used.
func NewService(ctx context.Context, cfg config.AIConfig, retriever retrieval.Retriever) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chain: runnable, retriever: retriever}, nil
}

// GenerateReply runs one blocking model call for the conversation. history
// holds the turns before the current user message; userText is the current
// message. The call blocks only the calling goroutine, so other connections
// keep being served while it is outstanding. Failures map to
// ErrModelUnavailable; a whitespace-only completion maps to ErrEmptyReply.
func (s *Service) GenerateReply(ctx context.Context, history []chat.Turn, userText string) (string, error) {
	input := map[string]any{
		"system":  s.systemPrompt(ctx, userText),
		"history": buildHistoryMessages(history),
		"query":   userText,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	reply := strings.TrimSpace(response.Content)
	if reply == "" {
		return "", ErrEmptyReply
	}

	log.Printf("[ai] generated reply, length=%d", len(reply))
	return reply, nil
}

// systemPrompt folds retrieved portfolio context into the persona when a
// retriever is configured. Retrieval failures degrade to the bare persona.
func (s *Service) systemPrompt(ctx context.Context, query string) string {
	if s.retriever == nil {
		return SystemPrompt
	}

	docs, err := s.retriever.Search(ctx, query, contextTopK)
	if err != nil {
		log.Printf("[ai] context search failed: %v", err)
		return SystemPrompt
	}
	if len(docs) == 0 {
		return SystemPrompt
	}

	var builder strings.Builder
	builder.WriteString(SystemPrompt)
	builder.WriteString("\nUse the following context about Solai Rajan to provide accurate and personalized responses.\nContext:")
	for _, doc := range docs {
		builder.WriteString("\n")
		builder.WriteString(doc.Content)
	}
	return builder.String()
}

func buildHistoryMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > historyLimit {
		startIdx = len(turns) - historyLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return history
}
