package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every runtime setting of the gateway.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Store  StoreConfig
	Vector VectorConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		AI:     ai,
		Store:  loadStoreConfig(),
		Vector: loadVectorConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	origins := strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8765"
	}

	if strings.Contains(port, ":") {
		// Accept ":8765" or "127.0.0.1:8765" as-is.
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// AIConfig describes the remote chat-completion model.
type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel creates a model instance from the configuration. OpenRouter
// exposes an OpenAI-compatible endpoint, so the openai component is pointed
// at its base URL.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("OpenRouter credentials missing: set OPENROUTER_API_KEY and MODEL_NAME")
	}

	maxTokens := c.MaxTokens
	temperature := float32(c.Temperature)

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
}

func loadAIConfig() (AIConfig, error) {
	maxTokens := 512
	if override, err := parseOptionalIntEnv("MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		maxTokens = *override
	}

	temperature := 0.4
	if override, err := parseOptionalFloatEnv("TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		BaseURL:     getEnvOrDefault("OPENROUTER_API_URL", "https://openrouter.ai/api/v1"),
		Model:       getEnvOrDefault("MODEL_NAME", "openai/gpt-oss-20b:free"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}

// StoreConfig describes transcript persistence.
type StoreConfig struct {
	HistoryDir string
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		HistoryDir: getEnvOrDefault("HISTORY_DIR", "./session_history"),
	}
}

// VectorConfig describes the external vector store used by the REST/RAG
// surface. The websocket chat path works without it.
type VectorConfig struct {
	APIURL     string
	APIKey     string
	Collection string
}

// Enabled reports whether a remote vector store is configured.
func (c VectorConfig) Enabled() bool {
	return c.APIURL != "" && c.APIKey != ""
}

func loadVectorConfig() VectorConfig {
	return VectorConfig{
		APIURL:     strings.TrimSpace(os.Getenv("VECTOR_API_URL")),
		APIKey:     strings.TrimSpace(os.Getenv("VECTOR_API_KEY")),
		Collection: getEnvOrDefault("VECTOR_COLLECTION", "portfolio"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
