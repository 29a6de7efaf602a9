package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"cruxpad/internal/contextutil"
)

// ClientCookie names the cookie that identifies a browser across requests.
const ClientCookie = "cruxpad_client"

const clientCookieMaxAge = 365 * 24 * time.Hour

// ClientID makes sure every request carries a client ID. A missing or
// malformed cookie is replaced with a fresh random UUID.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(ClientCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(clientCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(contextutil.WithClientID(r.Context(), id)))
	})
}
