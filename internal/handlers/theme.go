package handlers

import (
	"encoding/json"
	"net/http"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
	"cruxpad/internal/theme"
)

// ThemeHandler reads and stores the client's display theme.
type ThemeHandler struct {
	svc service.CheatsheetService
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(svc service.CheatsheetService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

// ThemeBody is the theme payload for GET and PUT /api/theme.
//
// swagger:model ThemeBody
type ThemeBody struct {
	Theme string `json:"theme"`
}

// Get handles GET /api/theme.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	th, err := h.svc.Theme(ctx, contextutil.ClientIDFromContext(ctx), prefersDark(r))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load theme")
		return
	}
	writeJSON(w, ctx, ThemeBody{Theme: th.String()})
}

// Put handles PUT /api/theme.
func (h *ThemeHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var body ThemeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	th, err := theme.Parse(body.Theme)
	if err != nil {
		logger.WarnContext(ctx, "invalid theme", "theme", body.Theme)
		writeError(w, http.StatusBadRequest, "Theme must be light or dark")
		return
	}

	if err := h.svc.SetTheme(ctx, contextutil.ClientIDFromContext(ctx), th); err != nil {
		handleServiceError(w, ctx, err, "Failed to store theme")
		return
	}
	writeJSON(w, ctx, ThemeBody{Theme: th.String()})
}
