package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/solairajan18/solai-gateway/internal/handler/portfolio"
	"github.com/solairajan18/solai-gateway/internal/handler/ws"
	middlewarePkg "github.com/solairajan18/solai-gateway/internal/middleware"
	"github.com/solairajan18/solai-gateway/internal/retrieval"
	chatservice "github.com/solairajan18/solai-gateway/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatservice.Service, retriever retrieval.Retriever, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	wsHandler := ws.New(chatSvc)
	wsHandler.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		portfolioHandler := portfolio.New(retriever)
		portfolioHandler.RegisterRoutes(api)
	})

	return r
}
