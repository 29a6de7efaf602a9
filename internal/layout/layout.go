// Package layout places cheatsheet items on a fixed card grid and splits the
// grid into pages. It computes geometry only; drawing is left to a renderer.
package layout

import "strconv"

// Measurer reports the rendered width of a string in the same unit as the
// page geometry. Renderers supply one backed by their font metrics.
type Measurer interface {
	StringWidth(s string) float64
}

// Spec holds the fixed page and grid geometry, in points.
type Spec struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	HeaderHeight  float64 // band drawn at the top of every page
	HeaderGap     float64 // space between the header and the first row
	FooterReserve float64 // rows may not extend into the bottom FooterReserve points

	Columns     int
	RowsPerPage int
	CardHeight  float64
	RowSpacing  float64
	ColumnGap   float64

	CardPadding float64
	BadgeWidth  float64 // room left of the text for the number badge
	LineHeight  float64
	MaxLines    int
}

// A4 returns the portrait A4 geometry used for exports.
func A4() Spec {
	return Spec{
		PageWidth:     595.28,
		PageHeight:    841.89,
		Margin:        40,
		HeaderHeight:  100,
		HeaderGap:     20,
		FooterReserve: 60,
		Columns:       3,
		RowsPerPage:   4,
		CardHeight:    65,
		RowSpacing:    12,
		ColumnGap:     15,
		CardPadding:   10,
		BadgeWidth:    25,
		LineHeight:    10,
		MaxLines:      3,
	}
}

// ContentWidth is the page width inside the side margins.
func (s Spec) ContentWidth() float64 {
	return s.PageWidth - 2*s.Margin
}

// CardWidth divides the content width, less the column gaps, between the columns.
func (s Spec) CardWidth() float64 {
	return (s.ContentWidth() - s.ColumnGap*float64(s.Columns-1)) / float64(s.Columns)
}

// TextWidth is the width available to wrapped text inside a card.
func (s Spec) TextWidth() float64 {
	return s.CardWidth() - 2*s.CardPadding - s.BadgeWidth
}

// CardsPerPage is the grid capacity of one page.
func (s Spec) CardsPerPage() int {
	return s.Columns * s.RowsPerPage
}

// FirstRowY is the top of the first card row on every page.
func (s Spec) FirstRowY() float64 {
	return s.HeaderHeight + s.HeaderGap
}

// UsableBottom is the lowest y a card may reach.
func (s Spec) UsableBottom() float64 {
	return s.PageHeight - s.FooterReserve
}

// Card is one placed cheatsheet item.
type Card struct {
	Index     int // position in the full chunk sequence, 0-based
	X, Y      float64
	Width     float64
	Height    float64
	Text      string
	Lines     []string // wrapped and, if needed, truncated text
	Truncated bool
	Color     string
}

// Page is one page of placed cards.
type Page struct {
	Number int // 1-based
	Total  int
	Cards  []Card
}

// Footer is the page indicator printed at the bottom of the page.
func (p Page) Footer() string {
	return strconv.Itoa(p.Number) + "/" + strconv.Itoa(p.Total)
}
