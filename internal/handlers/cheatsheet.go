package handlers

import (
	"net/http"
	"time"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
)

// CheatsheetHandler exposes the current cheatsheet as JSON.
type CheatsheetHandler struct {
	svc service.CheatsheetService
}

// NewCheatsheetHandler creates a new CheatsheetHandler.
func NewCheatsheetHandler(svc service.CheatsheetService) *CheatsheetHandler {
	return &CheatsheetHandler{svc: svc}
}

// CheatsheetResponse is the client's current cheatsheet.
//
// swagger:model CheatsheetResponse
type CheatsheetResponse struct {
	Chunks    []string `json:"chunks"`
	Loading   bool     `json:"loading"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// Get handles GET /api/cheatsheet.
func (h *CheatsheetHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cs := h.svc.Current(ctx, contextutil.ClientIDFromContext(ctx))

	resp := CheatsheetResponse{
		Chunks:  cs.Chunks,
		Loading: cs.Loading,
	}
	if resp.Chunks == nil {
		resp.Chunks = []string{}
	}
	if !cs.UpdatedAt.IsZero() {
		resp.UpdatedAt = cs.UpdatedAt.UTC().Format(time.RFC3339)
	}
	writeJSON(w, ctx, resp)
}

// Delete handles DELETE /api/cheatsheet.
func (h *CheatsheetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.svc.Reset(ctx, contextutil.ClientIDFromContext(ctx))
	w.WriteHeader(http.StatusNoContent)
}
