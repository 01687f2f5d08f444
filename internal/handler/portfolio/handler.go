package portfolio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solairajan18/solai-gateway/internal/retrieval"
	"github.com/solairajan18/solai-gateway/pkg/utils"
)

// Handler exposes the portfolio-detail REST surface backed by the vector
// store.
type Handler struct {
	retriever retrieval.Retriever
}

// New creates the portfolio handler.
func New(retriever retrieval.Retriever) *Handler {
	return &Handler{retriever: retriever}
}

// RegisterRoutes mounts the portfolio routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Post("/details", h.handleAddDetail)
	r.Get("/details", h.handleListDetails)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleAddDetail(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Category string         `json:"category"`
		Content  string         `json:"content"`
		Metadata map[string]any `json:"metadata"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Content == "" {
		utils.RespondError(w, http.StatusBadRequest, "content is required")
		return
	}

	metadata := payload.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	if payload.Category != "" {
		metadata["category"] = payload.Category
	}
	metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	doc := retrieval.Document{Content: payload.Content, Metadata: metadata}
	if err := h.retriever.Add(r.Context(), doc); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to add personal detail")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *Handler) handleListDetails(w http.ResponseWriter, r *http.Request) {
	docs, err := h.retriever.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to list personal details")
		return
	}
	if docs == nil {
		docs = []retrieval.Document{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"details": docs})
}
