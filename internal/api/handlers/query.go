package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/lexihq/lexi/internal/api"
	"github.com/lexihq/lexi/internal/domain"
)

// Responder produces a user-facing answer for a legal question.
type Responder interface {
	Respond(ctx context.Context, query string) string
}

type QueryHandler struct {
	responder Responder
}

func NewQueryHandler(responder Responder) *QueryHandler {
	return &QueryHandler{responder: responder}
}

type QueryRequest struct {
	Query string `json:"query"`
}

// Query handles POST /query.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, domain.ErrEmptyQuery)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		api.HandleError(w, domain.ErrEmptyQuery)
		return
	}

	log.Printf("received query: %s", query)

	response := h.responder.Respond(r.Context(), query)
	api.JSON(w, http.StatusOK, api.QueryResponse{Response: response})
}
