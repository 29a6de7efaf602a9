package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_summarization_provider.go -package=mocks cruxpad/internal/service SummarizationProvider
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_cheatsheet_service.go -package=mocks -mock_names=CheatsheetService=MockCheatsheetService cruxpad/internal/service CheatsheetService

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"cruxpad/internal/chunker"
	"cruxpad/internal/contextutil"
	"cruxpad/internal/extract"
	"cruxpad/internal/layout"
	"cruxpad/internal/prompt"
	"cruxpad/internal/render"
	"cruxpad/internal/session"
	"cruxpad/internal/storage"
	"cruxpad/internal/theme"
)

// DefaultAutoSummarizeThreshold is the number of characters typed text must
// exceed before it is sent for summarization.
const DefaultAutoSummarizeThreshold = 50

// SummarizationProvider sends a prompt to an LLM and returns the raw reply
// payload. The payload may be plain text or a JSON document.
type SummarizationProvider interface {
	Summarize(ctx context.Context, prompt string) ([]byte, error)
}

// TextExtractor reads plain text out of an uploaded file.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, declaredType string) (string, error)
}

// Upload is a user-supplied file.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// Artifact is a downloadable export.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Cheatsheet is the current state shown to a client.
type Cheatsheet struct {
	Chunks    []string
	Loading   bool
	UpdatedAt time.Time
}

// CheatsheetService turns documents into cheatsheets and exports them.
type CheatsheetService interface {
	// SummarizeText summarizes typed text. Text at or under the auto-summarize
	// threshold clears the cheatsheet without calling the LLM.
	SummarizeText(ctx context.Context, clientID, text string) ([]string, error)
	// SummarizeFile extracts text from an upload and summarizes it.
	SummarizeFile(ctx context.Context, clientID string, upload Upload) ([]string, error)
	// Current returns the client's cheatsheet.
	Current(ctx context.Context, clientID string) Cheatsheet
	// Reset clears the client's cheatsheet.
	Reset(ctx context.Context, clientID string)
	// ExportText serializes the cheatsheet as summary.txt.
	ExportText(ctx context.Context, clientID string) (Artifact, error)
	// ExportPDF renders the cheatsheet as a paginated card PDF.
	ExportPDF(ctx context.Context, clientID string, th theme.Theme) (Artifact, error)
	// Theme returns the stored theme, or the client's hint when none is stored.
	Theme(ctx context.Context, clientID string, prefersDark bool) (theme.Theme, error)
	// SetTheme stores the client's theme.
	SetTheme(ctx context.Context, clientID string, th theme.Theme) error
}

// Option configures the cheatsheet service.
type Option func(*cheatsheetService)

// WithExtractor replaces the default upload extractor.
func WithExtractor(e TextExtractor) Option {
	return func(s *cheatsheetService) {
		s.extractor = e
	}
}

// WithPromptBuilder replaces the default prompt builder.
func WithPromptBuilder(b *prompt.Builder) Option {
	return func(s *cheatsheetService) {
		s.prompts = b
	}
}

// WithRenderer replaces the default A4 PDF renderer.
func WithRenderer(r *render.PDFRenderer) Option {
	return func(s *cheatsheetService) {
		s.renderer = r
	}
}

// WithAutoSummarizeThreshold sets the typed text threshold.
func WithAutoSummarizeThreshold(n int) Option {
	return func(s *cheatsheetService) {
		s.threshold = n
	}
}

// cheatsheetService implements CheatsheetService.
type cheatsheetService struct {
	provider  SummarizationProvider
	prefs     storage.PreferenceStore
	sessions  *session.Store
	extractor TextExtractor
	prompts   *prompt.Builder
	renderer  *render.PDFRenderer
	threshold int
}

// NewCheatsheetService creates a new CheatsheetService.
func NewCheatsheetService(provider SummarizationProvider, prefs storage.PreferenceStore, sessions *session.Store, opts ...Option) CheatsheetService {
	s := &cheatsheetService{
		provider:  provider,
		prefs:     prefs,
		sessions:  sessions,
		extractor: extract.NewExtractor(),
		prompts:   prompt.NewBuilder(),
		renderer:  render.NewPDFRenderer(layout.A4()),
		threshold: DefaultAutoSummarizeThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizeText summarizes typed text.
func (s *cheatsheetService) SummarizeText(ctx context.Context, clientID, text string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if clientID == "" {
		return nil, &ValidationError{Field: "client_id", Message: "cannot be empty"}
	}

	if utf8.RuneCountInString(text) <= s.threshold {
		logger.DebugContext(ctx, "text under auto-summarize threshold, clearing cheatsheet",
			"length", utf8.RuneCountInString(text), "threshold", s.threshold)
		s.sessions.Reset(clientID)
		return []string{}, nil
	}

	done := s.sessions.Begin(clientID)
	defer done()

	return s.generate(ctx, clientID, text)
}

// SummarizeFile extracts and summarizes an uploaded file.
func (s *cheatsheetService) SummarizeFile(ctx context.Context, clientID string, upload Upload) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if clientID == "" {
		return nil, &ValidationError{Field: "client_id", Message: "cannot be empty"}
	}
	if len(upload.Data) == 0 {
		logger.WarnContext(ctx, "empty upload", "file", upload.Name)
		return nil, &ValidationError{Field: "file", Message: "cannot be empty"}
	}

	done := s.sessions.Begin(clientID)
	defer done()

	text, err := s.extractor.Extract(ctx, upload.Data, upload.ContentType)
	if err != nil {
		logger.ErrorContext(ctx, "failed to extract upload", "file", upload.Name, "content_type", upload.ContentType, "error", err)
		if errors.Is(err, extract.ErrUnsupportedFileType) {
			return nil, withKind(ErrUnsupportedFileType, err)
		}
		return nil, withKind(ErrExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		logger.WarnContext(ctx, "upload contains no text", "file", upload.Name)
		return nil, withKind(ErrExtraction, errors.New("no text found in file"))
	}

	logger.InfoContext(ctx, "extracted upload", "file", upload.Name, "size", len(upload.Data), "text_length", len(text))
	return s.generate(ctx, clientID, text)
}

// generate runs prompt -> provider -> decode -> chunk and stores the result.
// On failure the previous chunks are kept.
func (s *cheatsheetService) generate(ctx context.Context, clientID, document string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	p, err := s.prompts.Build(document)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build prompt", "error", err)
		return nil, WrapError(err, "failed to build prompt")
	}

	start := time.Now()
	payload, err := s.provider.Summarize(ctx, p)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err, "duration", time.Since(start))
		return nil, withKind(ErrLLMCall, err)
	}

	resp := chunker.DecodeResponse(payload)
	chunks := chunker.Chunk(resp.Text)
	s.sessions.SetChunks(clientID, chunks)

	logger.InfoContext(ctx, "cheatsheet generated",
		"document_length", len(document),
		"response_kind", resp.Kind.String(),
		"chunks", len(chunks),
		"duration", time.Since(start))
	return chunks, nil
}

// Current returns the client's cheatsheet.
func (s *cheatsheetService) Current(ctx context.Context, clientID string) Cheatsheet {
	st := s.sessions.Get(clientID)
	return Cheatsheet{
		Chunks:    st.Chunks,
		Loading:   st.Loading,
		UpdatedAt: st.UpdatedAt,
	}
}

// Reset clears the client's cheatsheet.
func (s *cheatsheetService) Reset(ctx context.Context, clientID string) {
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "cheatsheet reset")
	s.sessions.Reset(clientID)
}

// ExportText serializes the cheatsheet.
func (s *cheatsheetService) ExportText(ctx context.Context, clientID string) (Artifact, error) {
	chunks := s.sessions.Get(clientID).Chunks
	if len(chunks) == 0 {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "text export with empty cheatsheet")
		return Artifact{}, ErrEmptyExport
	}

	return Artifact{
		Name:        render.TextFileName,
		ContentType: render.TextContentType,
		Data:        render.Text(chunks),
	}, nil
}

// ExportPDF paginates and renders the cheatsheet.
func (s *cheatsheetService) ExportPDF(ctx context.Context, clientID string, th theme.Theme) (Artifact, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !th.Valid() {
		return Artifact{}, &ValidationError{Field: "theme", Message: "must be light or dark"}
	}

	chunks := s.sessions.Get(clientID).Chunks
	if len(chunks) == 0 {
		logger.WarnContext(ctx, "pdf export with empty cheatsheet")
		return Artifact{}, ErrEmptyExport
	}

	start := time.Now()
	pages := layout.NewPaginator(s.renderer.Spec(), render.NewFontMeasurer()).Paginate(chunks, th)
	data, err := s.renderer.Render(pages, th)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render pdf", "error", err)
		return Artifact{}, withKind(ErrRender, err)
	}

	logger.InfoContext(ctx, "pdf exported",
		"theme", th.String(),
		"cards", layout.CardCount(pages),
		"pages", len(pages),
		"bytes", len(data),
		"duration", time.Since(start))
	return Artifact{
		Name:        render.PDFFileName,
		ContentType: render.PDFContentType,
		Data:        data,
	}, nil
}

// Theme resolves the client's theme. A stored preference wins; otherwise the
// client's color scheme hint decides.
func (s *cheatsheetService) Theme(ctx context.Context, clientID string, prefersDark bool) (theme.Theme, error) {
	dark, err := s.prefs.GetDarkMode(ctx, clientID)
	if errors.Is(err, storage.ErrNotFound) {
		return theme.FromDarkMode(prefersDark), nil
	}
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load theme preference", "error", err)
		return theme.FromDarkMode(prefersDark), WrapError(err, "failed to load theme preference")
	}
	return theme.FromDarkMode(dark), nil
}

// SetTheme stores the client's theme.
func (s *cheatsheetService) SetTheme(ctx context.Context, clientID string, th theme.Theme) error {
	if clientID == "" {
		return &ValidationError{Field: "client_id", Message: "cannot be empty"}
	}
	if !th.Valid() {
		return &ValidationError{Field: "theme", Message: "must be light or dark"}
	}

	if err := s.prefs.SetDarkMode(ctx, clientID, th.IsDark()); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to store theme preference", "error", err)
		return WrapError(err, "failed to store theme preference")
	}
	return nil
}
