package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cruxpad/internal/service"
	"cruxpad/internal/service/mocks"
	"cruxpad/internal/session"
	"cruxpad/internal/storage"
	storagemocks "cruxpad/internal/storage/mocks"
	"cruxpad/internal/theme"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const longText = "Photosynthesis converts light energy into chemical energy stored in glucose molecules."

type fixture struct {
	provider *mocks.MockSummarizationProvider
	prefs    *storagemocks.MockPreferenceStore
	sessions *session.Store
	svc      service.CheatsheetService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		provider: mocks.NewMockSummarizationProvider(ctrl),
		prefs:    storagemocks.NewMockPreferenceStore(ctrl),
		sessions: session.NewStore(),
	}
	f.svc = service.NewCheatsheetService(f.provider, f.prefs, f.sessions)
	return f
}

func TestNewCheatsheetService(t *testing.T) {
	f := newFixture(t)
	if f.svc == nil {
		t.Fatal("NewCheatsheetService() returned nil")
	}
}

func TestCheatsheetService_SummarizeText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		mockSetup  func(f *fixture)
		wantChunks []string
		wantErr    error
	}{
		{
			name:       "under threshold skips the LLM",
			text:       "short note",
			mockSetup:  func(f *fixture) {},
			wantChunks: []string{},
		},
		{
			name:       "exactly at threshold skips the LLM",
			text:       strings.Repeat("a", service.DefaultAutoSummarizeThreshold),
			mockSetup:  func(f *fixture) {},
			wantChunks: []string{},
		},
		{
			name: "plain bulleted reply",
			text: longText,
			mockSetup: func(f *fixture) {
				f.provider.EXPECT().
					Summarize(gomock.Any(), gomock.Any()).
					Return([]byte("- Light reactions\n- Calvin cycle"), nil)
			},
			wantChunks: []string{"Light reactions", "Calvin cycle"},
		},
		{
			name: "chat completion payload",
			text: longText,
			mockSetup: func(f *fixture) {
				f.provider.EXPECT().
					Summarize(gomock.Any(), gomock.Any()).
					Return([]byte(`{"choices":[{"message":{"role":"assistant","content":"1. Chlorophyll absorbs light\n2. Oxygen is released"}}]}`), nil)
			},
			wantChunks: []string{"Chlorophyll absorbs light", "Oxygen is released"},
		},
		{
			name: "provider failure",
			text: longText,
			mockSetup: func(f *fixture) {
				f.provider.EXPECT().
					Summarize(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: service.ErrLLMCall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			got, err := f.svc.SummarizeText(context.Background(), "client-1", tt.text)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SummarizeText() error = %v, want %v", err, tt.wantErr)
				}
				if f.svc.Current(context.Background(), "client-1").Loading {
					t.Error("loading flag should be cleared after failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("SummarizeText() unexpected error: %v", err)
			}
			if !equalChunks(got, tt.wantChunks) {
				t.Errorf("SummarizeText() = %q, want %q", got, tt.wantChunks)
			}

			current := f.svc.Current(context.Background(), "client-1")
			if !equalChunks(current.Chunks, tt.wantChunks) {
				t.Errorf("Current().Chunks = %q, want %q", current.Chunks, tt.wantChunks)
			}
			if current.Loading {
				t.Error("loading flag should be cleared after success")
			}
		})
	}
}

func TestCheatsheetService_SummarizeText_PromptCarriesDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.provider.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) ([]byte, error) {
			if !strings.Contains(prompt, longText) {
				t.Errorf("prompt does not contain the document: %q", prompt)
			}
			if !strings.Contains(prompt, "cheatsheet") {
				t.Errorf("prompt does not contain the instructions: %q", prompt)
			}
			if !f.svc.Current(ctx, "client-1").Loading {
				t.Error("loading flag should be set while the LLM call runs")
			}
			return []byte("- item one"), nil
		})

	if _, err := f.svc.SummarizeText(ctx, "client-1", longText); err != nil {
		t.Fatalf("SummarizeText() error = %v", err)
	}
}

func TestCheatsheetService_SummarizeText_FailureKeepsPreviousChunks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sessions.SetChunks("client-1", []string{"Earlier result"})

	f.provider.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	if _, err := f.svc.SummarizeText(ctx, "client-1", longText); err == nil {
		t.Fatal("SummarizeText() expected error")
	}

	got := f.svc.Current(ctx, "client-1").Chunks
	if !equalChunks(got, []string{"Earlier result"}) {
		t.Errorf("Current().Chunks = %q, want previous chunks", got)
	}
}

func TestCheatsheetService_SummarizeText_ShortTextClears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sessions.SetChunks("client-1", []string{"Earlier result"})

	if _, err := f.svc.SummarizeText(ctx, "client-1", "tiny"); err != nil {
		t.Fatalf("SummarizeText() error = %v", err)
	}
	if got := f.svc.Current(ctx, "client-1").Chunks; len(got) != 0 {
		t.Errorf("Current().Chunks = %q, want empty", got)
	}
}

func TestCheatsheetService_SummarizeText_EmptyClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SummarizeText(context.Background(), "", longText)

	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "client_id" {
		t.Errorf("SummarizeText() error = %v, want client_id validation error", err)
	}
}

func TestCheatsheetService_SummarizeFile(t *testing.T) {
	tests := []struct {
		name      string
		upload    service.Upload
		mockSetup func(f *fixture)
		wantErr   error
		wantLen   int
	}{
		{
			name: "plain text file",
			upload: service.Upload{
				Name:        "notes.txt",
				ContentType: "text/plain",
				Data:        []byte("Mitochondria are the powerhouse of the cell."),
			},
			mockSetup: func(f *fixture) {
				f.provider.EXPECT().
					Summarize(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) ([]byte, error) {
						if !strings.Contains(prompt, "Mitochondria") {
							t.Errorf("prompt missing file text: %q", prompt)
						}
						return []byte(`{"text":"- ATP synthesis\n- Cellular respiration"}`), nil
					})
			},
			wantLen: 2,
		},
		{
			name: "short file is still summarized",
			upload: service.Upload{
				Name:        "tiny.txt",
				ContentType: "text/plain",
				Data:        []byte("DNA replication"),
			},
			mockSetup: func(f *fixture) {
				f.provider.EXPECT().
					Summarize(gomock.Any(), gomock.Any()).
					Return([]byte("- Semi-conservative copying"), nil)
			},
			wantLen: 1,
		},
		{
			name: "unsupported type",
			upload: service.Upload{
				Name:        "photo.png",
				ContentType: "image/png",
				Data:        []byte("\x89PNG\r\n\x1a\n"),
			},
			mockSetup: func(f *fixture) {},
			wantErr:   service.ErrUnsupportedFileType,
		},
		{
			name: "corrupt pdf",
			upload: service.Upload{
				Name:        "broken.pdf",
				ContentType: "application/pdf",
				Data:        []byte("definitely not a pdf"),
			},
			mockSetup: func(f *fixture) {},
			wantErr:   service.ErrExtraction,
		},
		{
			name: "whitespace only text",
			upload: service.Upload{
				Name:        "blank.txt",
				ContentType: "text/plain",
				Data:        []byte("  \n\t "),
			},
			mockSetup: func(f *fixture) {},
			wantErr:   service.ErrExtraction,
		},
		{
			name:      "empty upload",
			upload:    service.Upload{Name: "empty.txt"},
			mockSetup: func(f *fixture) {},
			wantErr:   service.ErrInvalidInput,
		},
		{
			name: "provider failure",
			upload: service.Upload{
				Name:        "notes.txt",
				ContentType: "text/plain",
				Data:        []byte("Some content to summarize."),
			},
			mockSetup: func(f *fixture) {
				f.provider.EXPECT().
					Summarize(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("502 from upstream"))
			},
			wantErr: service.ErrLLMCall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			got, err := f.svc.SummarizeFile(context.Background(), "client-1", tt.upload)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SummarizeFile() error = %v, want %v", err, tt.wantErr)
				}
				if f.svc.Current(context.Background(), "client-1").Loading {
					t.Error("loading flag should be cleared after failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("SummarizeFile() unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("SummarizeFile() returned %d chunks, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestCheatsheetService_ExportText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.ExportText(ctx, "client-1"); !errors.Is(err, service.ErrEmptyExport) {
		t.Fatalf("ExportText() on empty cheatsheet error = %v, want ErrEmptyExport", err)
	}

	f.sessions.SetChunks("client-1", []string{"First fact", "Second fact"})
	art, err := f.svc.ExportText(ctx, "client-1")
	if err != nil {
		t.Fatalf("ExportText() error = %v", err)
	}
	if art.Name != "summary.txt" {
		t.Errorf("ExportText() name = %q, want summary.txt", art.Name)
	}
	if string(art.Data) != "First fact\n\nSecond fact" {
		t.Errorf("ExportText() data = %q", art.Data)
	}
}

func TestCheatsheetService_ExportPDF(t *testing.T) {
	tests := []struct {
		name    string
		chunks  []string
		theme   theme.Theme
		wantErr error
	}{
		{
			name:    "empty cheatsheet",
			chunks:  nil,
			theme:   theme.Light,
			wantErr: service.ErrEmptyExport,
		},
		{
			name:    "invalid theme",
			chunks:  []string{"Fact one"},
			theme:   theme.Theme("sepia"),
			wantErr: service.ErrInvalidInput,
		},
		{
			name:   "light theme",
			chunks: []string{"Fact one", "Fact two", "Fact three"},
			theme:  theme.Light,
		},
		{
			name:   "dark theme over two pages",
			chunks: manyChunks(13),
			theme:  theme.Dark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.sessions.SetChunks("client-1", tt.chunks)

			art, err := f.svc.ExportPDF(context.Background(), "client-1", tt.theme)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExportPDF() error = %v, want %v", err, tt.wantErr)
				}
				if art.Data != nil {
					t.Error("ExportPDF() should not produce an artifact on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExportPDF() unexpected error: %v", err)
			}
			if art.Name != "cruxpad-cheatsheet.pdf" || art.ContentType != "application/pdf" {
				t.Errorf("ExportPDF() artifact = %q %q", art.Name, art.ContentType)
			}
			if !bytes.HasPrefix(art.Data, []byte("%PDF-")) {
				t.Error("ExportPDF() data is not a PDF")
			}
		})
	}
}

func TestCheatsheetService_Theme(t *testing.T) {
	tests := []struct {
		name        string
		prefersDark bool
		mockSetup   func(f *fixture)
		want        theme.Theme
		wantErr     bool
	}{
		{
			name: "stored dark wins over hint",
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().GetDarkMode(gomock.Any(), "client-1").Return(true, nil)
			},
			want: theme.Dark,
		},
		{
			name:        "stored light wins over hint",
			prefersDark: true,
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().GetDarkMode(gomock.Any(), "client-1").Return(false, nil)
			},
			want: theme.Light,
		},
		{
			name:        "unset follows dark hint",
			prefersDark: true,
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().GetDarkMode(gomock.Any(), "client-1").Return(false, storage.ErrNotFound)
			},
			want: theme.Dark,
		},
		{
			name: "unset without hint is light",
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().GetDarkMode(gomock.Any(), "client-1").Return(false, storage.ErrNotFound)
			},
			want: theme.Light,
		},
		{
			name:        "store failure falls back to hint",
			prefersDark: true,
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().GetDarkMode(gomock.Any(), "client-1").Return(false, errors.New("disk I/O error"))
			},
			want:    theme.Dark,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			got, err := f.svc.Theme(context.Background(), "client-1", tt.prefersDark)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Theme() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Theme() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheatsheetService_SetTheme(t *testing.T) {
	tests := []struct {
		name      string
		clientID  string
		theme     theme.Theme
		mockSetup func(f *fixture)
		wantErr   error
	}{
		{
			name:     "dark",
			clientID: "client-1",
			theme:    theme.Dark,
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().SetDarkMode(gomock.Any(), "client-1", true).Return(nil)
			},
		},
		{
			name:     "light",
			clientID: "client-1",
			theme:    theme.Light,
			mockSetup: func(f *fixture) {
				f.prefs.EXPECT().SetDarkMode(gomock.Any(), "client-1", false).Return(nil)
			},
		},
		{
			name:      "invalid theme",
			clientID:  "client-1",
			theme:     theme.Theme("neon"),
			mockSetup: func(f *fixture) {},
			wantErr:   service.ErrInvalidInput,
		},
		{
			name:      "missing client",
			theme:     theme.Dark,
			mockSetup: func(f *fixture) {},
			wantErr:   service.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			err := f.svc.SetTheme(context.Background(), tt.clientID, tt.theme)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("SetTheme() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetTheme() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheatsheetService_Reset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sessions.SetChunks("client-1", []string{"keep me"})
	f.sessions.SetChunks("client-2", []string{"other client"})

	f.svc.Reset(ctx, "client-1")

	if got := f.svc.Current(ctx, "client-1").Chunks; len(got) != 0 {
		t.Errorf("Current().Chunks after Reset = %q, want empty", got)
	}
	if got := f.svc.Current(ctx, "client-2").Chunks; len(got) != 1 {
		t.Errorf("Reset() affected another client: %q", got)
	}
}

func manyChunks(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "A fact worth keeping " + strings.Repeat("!", i%3)
	}
	return out
}

func equalChunks(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
