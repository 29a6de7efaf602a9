package layout

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruxpad/internal/theme"
)

// fixedWidth measures every rune as the same width.
type fixedWidth float64

func (f fixedWidth) StringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * float64(f)
}

func makeChunks(n int) []string {
	chunks := make([]string, n)
	for i := range chunks {
		chunks[i] = fmt.Sprintf("Chunk %d", i)
	}
	return chunks
}

func TestPaginate_PageCountAndOrder(t *testing.T) {
	p := NewPaginator(A4(), fixedWidth(5))

	for _, n := range []int{0, 1, 11, 12, 13, 23, 24, 25, 36, 37, 100} {
		t.Run(fmt.Sprintf("%d chunks", n), func(t *testing.T) {
			chunks := makeChunks(n)
			pages := p.Paginate(chunks, theme.Light)

			wantPages := (n + 11) / 12
			require.Len(t, pages, wantPages)
			assert.Equal(t, n, CardCount(pages))

			next := 0
			for pi, pg := range pages {
				assert.Equal(t, pi+1, pg.Number)
				assert.Equal(t, wantPages, pg.Total)
				assert.LessOrEqual(t, len(pg.Cards), 12)
				for _, c := range pg.Cards {
					assert.Equal(t, next, c.Index)
					assert.Equal(t, chunks[next], c.Text)
					next++
				}
			}
		})
	}
}

func TestPaginate_Boundaries(t *testing.T) {
	p := NewPaginator(A4(), fixedWidth(5))

	tests := []struct {
		n         int
		wantSizes []int
	}{
		{n: 12, wantSizes: []int{12}},
		{n: 13, wantSizes: []int{12, 1}},
		{n: 24, wantSizes: []int{12, 12}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d chunks", tt.n), func(t *testing.T) {
			pages := p.Paginate(makeChunks(tt.n), theme.Dark)
			var sizes []int
			for _, pg := range pages {
				sizes = append(sizes, len(pg.Cards))
			}
			assert.Equal(t, tt.wantSizes, sizes)
			last := pages[len(pages)-1]
			assert.Equal(t, fmt.Sprintf("%d/%d", len(pages), len(pages)), last.Footer())
		})
	}
}

func TestPaginate_Geometry(t *testing.T) {
	spec := A4()
	p := NewPaginator(spec, fixedWidth(5))

	pages := p.Paginate(makeChunks(13), theme.Light)
	require.Len(t, pages, 2)

	cards := pages[0].Cards
	cw := spec.CardWidth()
	assert.InDelta(t, (595.28-80-30)/3, cw, 1e-9)

	assert.InDelta(t, 40, cards[0].X, 1e-9)
	assert.InDelta(t, 120, cards[0].Y, 1e-9)
	assert.InDelta(t, 40+cw+15, cards[1].X, 1e-9)
	assert.InDelta(t, 40+2*(cw+15), cards[2].X, 1e-9)
	assert.InDelta(t, 120, cards[2].Y, 1e-9)
	assert.InDelta(t, 40, cards[3].X, 1e-9)
	assert.InDelta(t, 120+65+12, cards[3].Y, 1e-9)
	assert.InDelta(t, 120+3*(65+12), cards[11].Y, 1e-9)

	for _, c := range cards {
		assert.InDelta(t, cw, c.Width, 1e-9)
		assert.InDelta(t, 65, c.Height, 1e-9)
		assert.LessOrEqual(t, c.Y+c.Height, spec.UsableBottom())
	}

	second := pages[1].Cards[0]
	assert.Equal(t, 12, second.Index)
	assert.InDelta(t, 40, second.X, 1e-9)
	assert.InDelta(t, 120, second.Y, 1e-9)
}

func TestPaginate_HeightTriggersPageBreak(t *testing.T) {
	spec := A4()
	spec.PageHeight = 300 // only the first row fits above 240
	p := NewPaginator(spec, fixedWidth(5))

	pages := p.Paginate(makeChunks(7), theme.Light)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Cards, 3)
	assert.Len(t, pages[1].Cards, 3)
	assert.Len(t, pages[2].Cards, 1)
	assert.Equal(t, 7, CardCount(pages))
}

func TestPaginate_ColorsArePeriodic(t *testing.T) {
	p := NewPaginator(A4(), fixedWidth(5))

	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		pages := p.Paginate(makeChunks(30), th)
		var cards []Card
		for _, pg := range pages {
			cards = append(cards, pg.Cards...)
		}

		period := len(th.Palette().Cards)
		for i := 0; i+period < len(cards); i++ {
			assert.Equal(t, cards[i].Color, cards[i+period].Color, "%s card %d", th, i)
		}
		assert.Equal(t, th.Palette().Cards[0], cards[0].Color)
	}

	light := p.Paginate(makeChunks(1), theme.Light)[0].Cards[0].Color
	dark := p.Paginate(makeChunks(1), theme.Dark)[0].Cards[0].Color
	assert.NotEqual(t, light, dark)
}

func TestPaginate_TruncatesOverflowingText(t *testing.T) {
	spec := A4()
	measure := fixedWidth(5)
	p := NewPaginator(spec, measure)

	long := strings.TrimSpace(strings.Repeat("lorem ", 84)) // 503 characters
	pages := p.Paginate([]string{long, "Short fact"}, theme.Light)

	require.Len(t, pages, 1)
	overflow := pages[0].Cards[0]
	require.Len(t, overflow.Lines, 3)
	assert.True(t, overflow.Truncated)
	assert.True(t, strings.HasSuffix(overflow.Lines[2], "..."))
	assert.Equal(t, "lorem lorem lorem ...", overflow.Lines[2])
	for _, line := range overflow.Lines {
		assert.LessOrEqual(t, measure.StringWidth(line), spec.TextWidth())
	}
	assert.Equal(t, long, overflow.Text)

	short := pages[0].Cards[1]
	assert.Equal(t, []string{"Short fact"}, short.Lines)
	assert.False(t, short.Truncated)
}
