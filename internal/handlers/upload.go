package handlers

import (
	"errors"
	"io"
	"net/http"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
)

// DefaultMaxUploadBytes caps an uploaded file.
const DefaultMaxUploadBytes = 32 << 20

// UploadHandler turns an uploaded PDF or text file into a cheatsheet.
type UploadHandler struct {
	svc      service.CheatsheetService
	maxBytes int64
}

// NewUploadHandler creates a new UploadHandler. maxBytes <= 0 uses DefaultMaxUploadBytes.
func NewUploadHandler(svc service.CheatsheetService, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadHandler{svc: svc, maxBytes: maxBytes}
}

// ServeHTTP handles POST /api/upload with a multipart "file" field.
//
// swagger:route POST /api/upload uploadFile
//
// Generate a cheatsheet from a PDF or plain text file.
//
// consumes:
// - multipart/form-data
// responses:
//
//	'200':
//	  schema:
//	    "$ref": "#/definitions/ChunksResponse"
//	'413':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'415':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'422':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Allow some room for the multipart envelope around the file.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.WarnContext(ctx, "upload too large", "limit", h.maxBytes)
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		logger.WarnContext(ctx, "missing upload", "error", err)
		writeError(w, http.StatusBadRequest, "A file is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if header.Size > h.maxBytes {
		logger.WarnContext(ctx, "upload too large", "size", header.Size, "limit", h.maxBytes)
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	upload := service.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	chunks, err := h.svc.SummarizeFile(ctx, contextutil.ClientIDFromContext(ctx), upload)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to summarize file")
		return
	}

	writeJSON(w, ctx, ChunksResponse{Chunks: chunks})
}
