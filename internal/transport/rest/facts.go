package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/factsphere/internal/domain"
	"github.com/heartmarshall/factsphere/internal/service/fact"
)

// maxBodyBytes bounds request bodies; a fact is at most a few hundred bytes.
const maxBodyBytes = 16 << 10

// factService defines the minimal interface needed by FactHandler.
type factService interface {
	ListFacts(ctx context.Context, input fact.ListFactsInput) ([]domain.Fact, error)
	CreateFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
	Vote(ctx context.Context, input fact.VoteInput) (*domain.Fact, error)
}

// FactHandler serves the facts REST endpoints.
type FactHandler struct {
	svc factService
	log *slog.Logger
}

// NewFactHandler creates a FactHandler.
func NewFactHandler(svc factService, logger *slog.Logger) *FactHandler {
	return &FactHandler{svc: svc, log: logger.With("handler", "fact")}
}

type listFactsResponse struct {
	Facts []domain.Fact `json:"facts"`
}

type voteRequest struct {
	Kind  string `json:"kind"`
	Value *int   `json:"value"`
}

// List handles GET /api/v1/facts?category=&limit=.
func (h *FactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := fact.ListFactsInput{Category: q.Get("category")}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		input.Limit = n
	}

	facts, err := h.svc.ListFacts(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if facts == nil {
		facts = []domain.Fact{}
	}

	writeJSON(w, http.StatusOK, listFactsResponse{Facts: facts})
}

// Create handles POST /api/v1/facts.
func (h *FactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var nf domain.NewFact
	if !h.decode(w, r, &nf) {
		return
	}

	f, err := h.svc.CreateFact(r.Context(), nf)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, f)
}

// Vote handles PATCH /api/v1/facts/{id}/votes.
func (h *FactHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be an integer"))
		return
	}

	var req voteRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Value == nil {
		handleError(h.log, w, r, domain.NewValidationError("value", "required"))
		return
	}

	f, err := h.svc.Vote(r.Context(), fact.VoteInput{
		ID:    domain.FactID(id),
		Kind:  req.Kind,
		Value: *req.Value,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// Categories handles GET /api/v1/categories.
func (h *FactHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	type category struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	cats := domain.Categories()
	out := make([]category, 0, len(cats))
	for _, c := range cats {
		out = append(out, category{Name: string(c), Color: c.Color()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

func (h *FactHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "request body is empty")
		default:
			writeError(w, http.StatusBadRequest, "invalid JSON body")
		}
		return false
	}
	return true
}
