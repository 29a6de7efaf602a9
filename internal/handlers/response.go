package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChunksResponse carries the generated cheatsheet items.
//
// swagger:model ChunksResponse
type ChunksResponse struct {
	Chunks []string `json:"chunks"`
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.WarnContext(ctx, "validation error", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		logger.WarnContext(ctx, "invalid input", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrUnsupportedFileType):
		logger.WarnContext(ctx, "unsupported file type", "error", err)
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported file type. Please upload a PDF or a text file.")
	case errors.Is(err, service.ErrExtraction):
		logger.WarnContext(ctx, "extraction failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "Error processing file. Please try another file.")
	case errors.Is(err, service.ErrLLMCall):
		logger.ErrorContext(ctx, "llm call failed", "error", err)
		writeError(w, http.StatusBadGateway, "Error processing with AI. Please try again.")
	case errors.Is(err, service.ErrEmptyExport):
		logger.WarnContext(ctx, "empty export", "error", err)
		writeError(w, http.StatusConflict, "No content to export!")
	case errors.Is(err, service.ErrRender):
		logger.ErrorContext(ctx, "render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
	default:
		logger.ErrorContext(ctx, "service error", "error", err)
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// writeJSON writes v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, ctx context.Context, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// prefersDark reads the Sec-CH-Prefers-Color-Scheme client hint.
func prefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get("Sec-CH-Prefers-Color-Scheme")), `"`)
	return strings.EqualFold(v, "dark")
}
