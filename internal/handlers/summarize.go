package handlers

import (
	"encoding/json"
	"net/http"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
)

// SummarizeHandler turns typed text into a cheatsheet.
type SummarizeHandler struct {
	svc service.CheatsheetService
}

// NewSummarizeHandler creates a new SummarizeHandler.
func NewSummarizeHandler(svc service.CheatsheetService) *SummarizeHandler {
	return &SummarizeHandler{svc: svc}
}

// SummarizeRequest represents the HTTP request payload for summarize.
//
// swagger:model SummarizeRequest
type SummarizeRequest struct {
	Text string `json:"text"`
}

// ServeHTTP handles POST /api/summarize.
//
// swagger:route POST /api/summarize summarizeText
//
// Generate a cheatsheet from typed text. Text of 50 characters or less clears
// the cheatsheet instead.
//
// responses:
//
//	'200':
//	  schema:
//	    "$ref": "#/definitions/ChunksResponse"
//	'400':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'502':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	chunks, err := h.svc.SummarizeText(ctx, contextutil.ClientIDFromContext(ctx), req.Text)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to summarize text")
		return
	}

	writeJSON(w, ctx, ChunksResponse{Chunks: chunks})
}
