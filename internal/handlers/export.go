package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
	"cruxpad/internal/theme"
)

// ExportHandler serves the cheatsheet as a downloadable file.
type ExportHandler struct {
	svc service.CheatsheetService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc service.CheatsheetService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Text handles GET /api/export/text.
func (h *ExportHandler) Text(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	art, err := h.svc.ExportText(ctx, contextutil.ClientIDFromContext(ctx))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export text")
		return
	}
	writeArtifact(w, r, art)
}

// PDF handles GET /api/export/pdf. The theme query parameter overrides the
// client's stored theme.
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	clientID := contextutil.ClientIDFromContext(ctx)

	var th theme.Theme
	if raw := r.URL.Query().Get("theme"); raw != "" {
		parsed, err := theme.Parse(raw)
		if err != nil {
			logger.WarnContext(ctx, "invalid theme parameter", "theme", raw)
			writeError(w, http.StatusBadRequest, "Theme must be light or dark")
			return
		}
		th = parsed
	} else {
		resolved, err := h.svc.Theme(ctx, clientID, prefersDark(r))
		if err != nil {
			logger.WarnContext(ctx, "using fallback theme for export", "theme", resolved, "error", err)
		}
		th = resolved
	}

	art, err := h.svc.ExportPDF(ctx, clientID, th)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export PDF")
		return
	}
	writeArtifact(w, r, art)
}

func writeArtifact(w http.ResponseWriter, r *http.Request, art service.Artifact) {
	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(art.Data); err != nil {
		contextutil.LoggerFromContext(r.Context()).ErrorContext(r.Context(), "failed to write export", "error", err)
	}
}
