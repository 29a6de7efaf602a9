package layout

import (
	"cruxpad/internal/theme"
)

// Paginator lays chunks out left to right, top to bottom, on a fixed grid.
type Paginator struct {
	spec    Spec
	measure Measurer
}

// NewPaginator creates a Paginator for the given geometry and font metrics.
func NewPaginator(spec Spec, measure Measurer) *Paginator {
	return &Paginator{spec: spec, measure: measure}
}

// Spec returns the geometry the paginator was built with.
func (p *Paginator) Spec() Spec {
	return p.spec
}

// Paginate places every chunk exactly once, in order. A new page starts when
// the next row would run past the usable height, or when the current page
// already holds CardsPerPage cards and chunks remain. Card i takes palette
// color i mod len(palette). No chunks yield no pages.
func (p *Paginator) Paginate(chunks []string, th theme.Theme) []Page {
	if len(chunks) == 0 {
		return []Page{}
	}

	s := p.spec
	palette := th.Palette()
	cardWidth := s.CardWidth()
	textWidth := s.TextWidth()
	perPage := s.CardsPerPage()

	var pages []Page
	current := Page{Number: 1}
	y := s.FirstRowY()
	col := 0

	for i, chunk := range chunks {
		if col == 0 && len(current.Cards) > 0 {
			full := len(current.Cards) >= perPage
			overflow := y+s.CardHeight > s.UsableBottom()
			if full || overflow {
				pages = append(pages, current)
				current = Page{Number: current.Number + 1}
				y = s.FirstRowY()
			}
		}

		lines, truncated := Truncate(Wrap(chunk, textWidth, p.measure), s.MaxLines, textWidth, p.measure)
		current.Cards = append(current.Cards, Card{
			Index:     i,
			X:         s.Margin + float64(col)*(cardWidth+s.ColumnGap),
			Y:         y,
			Width:     cardWidth,
			Height:    s.CardHeight,
			Text:      chunk,
			Lines:     lines,
			Truncated: truncated,
			Color:     palette.CardColor(i),
		})

		col++
		if col == s.Columns {
			col = 0
			y += s.CardHeight + s.RowSpacing
		}
	}
	pages = append(pages, current)

	for i := range pages {
		pages[i].Total = len(pages)
	}
	return pages
}

// CardCount returns the number of cards across pages.
func CardCount(pages []Page) int {
	n := 0
	for _, pg := range pages {
		n += len(pg.Cards)
	}
	return n
}
