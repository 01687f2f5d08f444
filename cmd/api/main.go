package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/solairajan18/solai-gateway/internal/config"
	"github.com/solairajan18/solai-gateway/internal/handler"
	"github.com/solairajan18/solai-gateway/internal/knowledge"
	"github.com/solairajan18/solai-gateway/internal/retrieval"
	"github.com/solairajan18/solai-gateway/internal/service/ai"
	chatservice "github.com/solairajan18/solai-gateway/internal/service/chat"
	"github.com/solairajan18/solai-gateway/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	backend, err := store.NewFileBackend(cfg.Store.HistoryDir)
	if err != nil {
		log.Fatalf("failed to prepare history dir: %v", err)
	}
	sessions := store.New(backend)
	kb := knowledge.New(knowledge.Seed(), nil)

	var retriever retrieval.Retriever
	if cfg.Vector.Enabled() {
		retriever = retrieval.NewClient(cfg.Vector.APIURL, cfg.Vector.APIKey, cfg.Vector.Collection)
		log.Println("vector store client initialized")
	} else {
		retriever = retrieval.NewMemoryRetriever(retrieval.Seed())
		log.Println("vector store not configured, using built-in portfolio documents")
	}

	var generator chatservice.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI, retriever)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality, knowledge base only")
		} else {
			generator = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("OpenRouter credentials not configured, skipping AI initialization")
	}

	chatSvc := chatservice.NewService(sessions, kb, generator)
	router := handler.NewRouter(chatSvc, retriever, cfg.Server.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("SolAI gateway listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
