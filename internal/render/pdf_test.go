package render

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"cruxpad/internal/layout"
	"cruxpad/internal/theme"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
}

func chunks(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Key point number %d about the topic", i+1)
	}
	return out
}

func renderChunks(t *testing.T, n int, th theme.Theme) []byte {
	t.Helper()

	spec := layout.A4()
	pages := layout.NewPaginator(spec, NewFontMeasurer()).Paginate(chunks(n), th)
	r := NewPDFRenderer(spec, WithClock(fixedNow), WithCompression(false))

	out, err := r.Render(pages, th)
	require.NoError(t, err)
	return out
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()

	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return rd.NumPage()
}

func TestPDFRenderer_PageCount(t *testing.T) {
	tests := []struct {
		name   string
		chunks int
		want   int
	}{
		{name: "single card", chunks: 1, want: 1},
		{name: "exactly one page", chunks: 12, want: 1},
		{name: "one over a page", chunks: 13, want: 2},
		{name: "exactly two pages", chunks: 24, want: 2},
		{name: "three pages", chunks: 30, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderChunks(t, tt.chunks, theme.Light)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
			assert.Equal(t, tt.want, pageCount(t, out))
		})
	}
}

func TestPDFRenderer_FooterOnEveryPage(t *testing.T) {
	out := renderChunks(t, 13, theme.Dark)

	assert.Contains(t, string(out), "(1/2) Tj")
	assert.Contains(t, string(out), "(2/2) Tj")
}

func TestPDFRenderer_HeaderAndCards(t *testing.T) {
	out := string(renderChunks(t, 2, theme.Light))

	assert.Contains(t, out, "(CruxPad) Tj")
	assert.Contains(t, out, "(Generated Mar 4, 2026) Tj")
	assert.Contains(t, out, "(Powered by CruxPad AI) Tj")
	assert.Contains(t, out, "(1) Tj")
	assert.Contains(t, out, "(2) Tj")
}

func TestPDFRenderer_DocumentProperties(t *testing.T) {
	out := string(renderChunks(t, 1, theme.Light))

	assert.Contains(t, out, "/Title (CruxPad Professional Cheatsheet)")
	assert.Contains(t, out, "/Subject (AI-Generated Premium Knowledge Summary)")
	assert.Contains(t, out, "/Author (CruxPad AI Assistant)")
	assert.Contains(t, out, "/Creator (CruxPad v2.0)")
}

func TestPDFRenderer_ThemesDiffer(t *testing.T) {
	light := renderChunks(t, 3, theme.Light)
	dark := renderChunks(t, 3, theme.Dark)

	assert.NotEqual(t, light, dark)
}

func TestPDFRenderer_NoPages(t *testing.T) {
	r := NewPDFRenderer(layout.A4())

	_, err := r.Render(nil, theme.Light)
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestPDFRenderer_NonLatinText(t *testing.T) {
	spec := layout.A4()
	pages := layout.NewPaginator(spec, NewFontMeasurer()).
		Paginate([]string{"Café déjà vu", "日本語のテキスト", "emoji 🚀 inside"}, theme.Light)

	out, err := NewPDFRenderer(spec, WithClock(fixedNow)).Render(pages, theme.Light)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, out))
}

func TestFontMeasurer_StringWidth(t *testing.T) {
	m := NewFontMeasurer()

	assert.Zero(t, m.StringWidth(""))
	assert.Greater(t, m.StringWidth("WWW"), m.StringWidth("iii"))
	assert.InDelta(t, 2*m.StringWidth("abc"), m.StringWidth("abcabc"), 0.001)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    rgb
		wantErr bool
	}{
		{in: "#ffffff", want: rgb{255, 255, 255}},
		{in: "#0f172a", want: rgb{15, 23, 42}},
		{in: "db2777", want: rgb{219, 39, 119}},
		{in: "#fff", want: rgb{255, 255, 255}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPalettesParse(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		p := th.Palette()
		colors := append([]string{p.Background, p.Text, p.Heading, p.Subheading, p.Accent, p.CardBorder, p.Secondary}, p.Cards...)
		for _, c := range colors {
			_, err := parseHex(c)
			assert.NoError(t, err, "theme %s color %s", th, c)
		}
	}
}
