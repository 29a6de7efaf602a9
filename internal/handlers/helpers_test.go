package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"cruxpad/internal/contextutil"
)

const testClientID = "client-test"

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// withClient attaches the test client ID the HTTP layer would normally set.
func withClient(r *http.Request) *http.Request {
	return r.WithContext(contextutil.WithClientID(r.Context(), testClientID))
}
