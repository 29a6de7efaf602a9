package handlers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"cruxpad/internal/contextutil"
	"cruxpad/internal/service"
	"cruxpad/internal/theme"
)

// ViewHandler serves the cheatsheet as an HTML page of cards.
type ViewHandler struct {
	svc      service.CheatsheetService
	markdown goldmark.Markdown
	template *template.Template
	fallback *template.Template
}

type cardView struct {
	Number  int
	Color   string
	Content template.HTML
}

// viewPageData holds template data for the cheatsheet page.
type viewPageData struct {
	Theme   string
	Palette theme.Palette
	Cards   []cardView
	Loading bool
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(svc service.CheatsheetService) *ViewHandler {
	return &ViewHandler{
		svc: svc,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
		),
		template: template.Must(template.New("cheatsheet").Parse(cheatsheetPage)),
		fallback: template.Must(template.New("fallback").Parse(fallbackPage)),
	}
}

// ServeHTTP handles GET /cheatsheet. Any failure while building the page
// serves the fallback view, which offers a reset.
func (h *ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	clientID := contextutil.ClientIDFromContext(ctx)

	th, err := h.theme(ctx, r, clientID)
	if err != nil {
		logger.WarnContext(ctx, "using fallback theme for view", "theme", th, "error", err)
	}

	cs := h.svc.Current(ctx, clientID)
	page, err := h.render(cs, th)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render cheatsheet view", "error", err)
		h.serveFallback(w, ctx)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// Reset handles POST /cheatsheet/reset from the fallback view.
func (h *ViewHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.svc.Reset(ctx, contextutil.ClientIDFromContext(ctx))
	http.Redirect(w, r, "/cheatsheet", http.StatusSeeOther)
}

func (h *ViewHandler) theme(ctx context.Context, r *http.Request, clientID string) (theme.Theme, error) {
	if raw := r.URL.Query().Get("theme"); raw != "" {
		if th, err := theme.Parse(raw); err == nil {
			return th, nil
		}
	}
	return h.svc.Theme(ctx, clientID, prefersDark(r))
}

func (h *ViewHandler) render(cs service.Cheatsheet, th theme.Theme) ([]byte, error) {
	colors := th.DisplayColors()
	data := viewPageData{
		Theme:   th.String(),
		Palette: th.Palette(),
		Loading: cs.Loading,
		Cards:   make([]cardView, 0, len(cs.Chunks)),
	}

	for i, chunk := range cs.Chunks {
		var buf bytes.Buffer
		if err := h.markdown.Convert([]byte(chunk), &buf); err != nil {
			return nil, fmt.Errorf("failed to convert card %d: %w", i+1, err)
		}
		data.Cards = append(data.Cards, cardView{
			Number:  i + 1,
			Color:   colors[i%len(colors)],
			Content: template.HTML(buf.String()),
		})
	}

	var out bytes.Buffer
	if err := h.template.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return out.Bytes(), nil
}

func (h *ViewHandler) serveFallback(w http.ResponseWriter, ctx context.Context) {
	var out bytes.Buffer
	if err := h.fallback.Execute(&out, nil); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to render fallback view", "error", err)
		http.Error(w, "Something went wrong displaying the content.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(out.Bytes())
}

const cheatsheetPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>CruxPad cheatsheet</title>
  <style>
    :root {
      color-scheme: {{.Theme}};
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 1100px;
      line-height: 1.5;
      background: {{.Palette.Background}};
      color: {{.Palette.Text}};
    }
    header {
      display: flex;
      justify-content: space-between;
      align-items: baseline;
      border-bottom: 2px solid {{.Palette.CardBorder}};
      margin-bottom: 1.5rem;
    }
    h1 {
      color: {{.Palette.Heading}};
      margin: 0 0 0.75rem;
    }
    nav a {
      color: {{.Palette.Accent}};
      margin-left: 1rem;
      text-decoration: none;
    }
    .grid {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
      gap: 1rem;
    }
    .card {
      border-radius: 12px;
      border-top: 3px solid {{.Palette.Accent}};
      padding: 0.75rem 1rem;
      box-shadow: 0 4px 12px rgba(0, 0, 0, 0.12);
    }
    .card .num {
      display: inline-block;
      min-width: 1.6rem;
      border-radius: 999px;
      text-align: center;
      background: {{.Palette.Heading}};
      color: #fff;
      font-weight: bold;
      font-size: 0.8rem;
    }
    .card p {
      margin: 0.4rem 0 0;
    }
    .empty {
      color: {{.Palette.Secondary}};
    }
  </style>
</head>
<body>
  <header>
    <h1>Your Cheatsheet</h1>
    <nav>
      <a href="/api/export/text">Export TXT</a>
      <a href="/api/export/pdf?theme={{.Theme}}">Export PDF</a>
    </nav>
  </header>
  {{if .Loading}}<p class="empty">Generating&hellip;</p>{{end}}
  {{if .Cards}}
  <section class="grid">
    {{range .Cards}}
    <article class="card" style="background: {{.Color}}">
      <span class="num">{{.Number}}</span>
      {{.Content}}
    </article>
    {{end}}
  </section>
  {{else}}
  <p class="empty">Your AI-generated cheatsheet will appear here.</p>
  {{end}}
</body>
</html>`

const fallbackPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>CruxPad cheatsheet</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      max-width: 640px;
      margin: 4rem auto;
      text-align: center;
    }
    button {
      padding: 0.5rem 1.5rem;
      border: 0;
      border-radius: 8px;
      background: #4f46e5;
      color: #fff;
      cursor: pointer;
    }
  </style>
</head>
<body>
  <h1>Something went wrong displaying the content.</h1>
  <form method="post" action="/cheatsheet/reset">
    <button type="submit">Reset</button>
  </form>
</body>
</html>`
