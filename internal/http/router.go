package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cruxpad/internal/handlers"
	"cruxpad/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	CheatsheetService service.CheatsheetService
	DB                handlers.Pinger
	// Models is optional; when nil the health check skips the LLM.
	Models         handlers.ModelChecker
	MaxUploadBytes int64
	IndexHTML      string // Embedded HTML content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(CORS)
	r.Use(ClientID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	summarizeHandler := handlers.NewSummarizeHandler(deps.CheatsheetService)
	uploadHandler := handlers.NewUploadHandler(deps.CheatsheetService, deps.MaxUploadBytes)
	cheatsheetHandler := handlers.NewCheatsheetHandler(deps.CheatsheetService)
	exportHandler := handlers.NewExportHandler(deps.CheatsheetService)
	themeHandler := handlers.NewThemeHandler(deps.CheatsheetService)
	viewHandler := handlers.NewViewHandler(deps.CheatsheetService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Models)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodPost, "/summarize", summarizeHandler)
		r.Method(http.MethodPost, "/upload", uploadHandler)
		r.Get("/cheatsheet", cheatsheetHandler.Get)
		r.Delete("/cheatsheet", cheatsheetHandler.Delete)
		r.Get("/export/text", exportHandler.Text)
		r.Get("/export/pdf", exportHandler.PDF)
		r.Get("/theme", themeHandler.Get)
		r.Put("/theme", themeHandler.Put)
	})

	r.Method(http.MethodGet, "/cheatsheet", viewHandler)
	r.Post("/cheatsheet/reset", viewHandler.Reset)

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
