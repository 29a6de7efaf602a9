// Package render turns a cheatsheet into downloadable artifacts: a plain text
// summary and a themed multi-page PDF of cards.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cruxpad/internal/layout"
	"cruxpad/internal/theme"

	"github.com/go-pdf/fpdf"
)

const (
	// PDFFileName is the download name of the PDF export.
	PDFFileName = "cruxpad-cheatsheet.pdf"
	// PDFContentType is the media type of the PDF export.
	PDFContentType = "application/pdf"

	docTitle    = "CruxPad Professional Cheatsheet"
	docSubject  = "AI-Generated Premium Knowledge Summary"
	docAuthor   = "CruxPad AI Assistant"
	docKeywords = "cheatsheet, summary, AI, knowledge, professional, stunning"
	docCreator  = "CruxPad v2.0"
)

// ErrNoPages is returned when Render is called without pages.
var ErrNoPages = errors.New("no pages to render")

// PDFRenderer draws paginated cards onto an A4 document.
type PDFRenderer struct {
	spec     layout.Spec
	now      func() time.Time
	compress bool
}

// Option configures a PDFRenderer.
type Option func(*PDFRenderer)

// WithClock sets the clock used for the header date and document timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *PDFRenderer) {
		r.now = now
	}
}

// WithCompression toggles content stream compression. On by default.
func WithCompression(on bool) Option {
	return func(r *PDFRenderer) {
		r.compress = on
	}
}

// NewPDFRenderer creates a renderer for the given page geometry.
func NewPDFRenderer(spec layout.Spec, opts ...Option) *PDFRenderer {
	r := &PDFRenderer{
		spec:     spec,
		now:      time.Now,
		compress: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Spec returns the page geometry.
func (r *PDFRenderer) Spec() layout.Spec {
	return r.spec
}

// Render produces the PDF bytes for pages. Every page gets the header band,
// its cards and a footer with its page indicator.
func (r *PDFRenderer) Render(pages []layout.Page, th theme.Theme) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	now := r.now()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: r.spec.PageWidth, Ht: r.spec.PageHeight},
	})
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(r.spec.Margin, r.spec.Margin, r.spec.Margin)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(docTitle, false)
	pdf.SetSubject(docSubject, false)
	pdf.SetAuthor(docAuthor, false)
	pdf.SetKeywords(docKeywords, false)
	pdf.SetCreator(docCreator, false)

	d := &drawer{
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		spec:    r.spec,
		palette: th.Palette(),
		date:    now.Format("Jan 2, 2006"),
	}

	for _, page := range pages {
		pdf.AddPage()
		d.background()
		d.header()
		for _, card := range page.Cards {
			d.card(card)
		}
		d.footer(page.Footer())
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to draw pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type drawer struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	spec    layout.Spec
	palette theme.Palette
	date    string
}

func (d *drawer) fill(hex string) {
	c := mustHex(hex)
	d.pdf.SetFillColor(c.r, c.g, c.b)
}

func (d *drawer) stroke(hex string) {
	c := mustHex(hex)
	d.pdf.SetDrawColor(c.r, c.g, c.b)
}

func (d *drawer) ink(hex string) {
	c := mustHex(hex)
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *drawer) text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

func (d *drawer) textRight(x, y float64, s string) {
	s = d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s), y, s)
}

func (d *drawer) textCenter(x, y float64, s string) {
	s = d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s)/2, y, s)
}

func (d *drawer) background() {
	d.fill(d.palette.Background)
	d.pdf.Rect(0, 0, d.spec.PageWidth, d.spec.PageHeight, "F")
}

// header draws the sky-blue gradient band, logo, titles and date.
func (d *drawer) header() {
	s := d.spec
	const band = 5.0
	for y := 0.0; y < s.HeaderHeight; y += band {
		p := y / s.HeaderHeight
		d.pdf.SetFillColor(14+int(59*p), 165+int(90*p), 233+int(22*p))
		d.pdf.Rect(0, y, s.PageWidth, band, "F")
	}

	d.fill(d.palette.Accent)
	d.pdf.Rect(0, 0, s.PageWidth, 3, "F")

	logoX, logoY := s.Margin, 35.0
	d.fill(d.palette.Background)
	d.pdf.Circle(logoX, logoY, 18, "F")
	d.fill(d.palette.Heading)
	d.pdf.Circle(logoX, logoY, 15, "F")
	d.pdf.SetFillColor(255, 255, 255)
	d.pdf.Circle(logoX-6, logoY-6, 2, "F")
	d.pdf.Circle(logoX+6, logoY-6, 2, "F")
	d.pdf.Circle(logoX, logoY+8, 2, "F")

	textX := logoX + 30
	d.pdf.SetFont(bodyFont, "B", 28)
	d.pdf.SetTextColor(255, 255, 255)
	d.text(textX, 28, "CruxPad")

	d.pdf.SetFontSize(20)
	d.ink(d.palette.Secondary)
	d.text(textX, 48, "Professional Cheatsheet")

	d.pdf.SetFontSize(12)
	d.pdf.SetTextColor(255, 255, 255)
	d.text(textX, 68, "AI-Powered • Concise • Stunning")

	d.pdf.SetFontSize(9)
	d.pdf.SetTextColor(200, 200, 200)
	d.textRight(s.PageWidth-s.Margin, 85, "Generated "+d.date)
}

func (d *drawer) card(c layout.Card) {
	s := d.spec

	d.fill(c.Color)
	d.pdf.RoundedRect(c.X, c.Y, c.Width, c.Height, 8, "1234", "F")

	d.stroke(d.palette.CardBorder)
	d.pdf.SetLineWidth(0.5)
	d.pdf.RoundedRect(c.X+1, c.Y+1, c.Width-2, c.Height-2, 7, "1234", "D")

	d.fill(d.palette.Accent)
	d.pdf.Rect(c.X, c.Y, c.Width, 3, "F")

	contentX := c.X + s.CardPadding
	contentY := c.Y + s.CardPadding + 6

	d.fill(d.palette.Heading)
	d.pdf.Circle(contentX+8, contentY-2, 10, "F")
	d.fill(d.palette.Accent)
	d.pdf.Circle(contentX+8, contentY-4, 4, "F")

	d.pdf.SetFont(bodyFont, "B", bodyFontSize)
	d.pdf.SetTextColor(255, 255, 255)
	d.textCenter(contentX+8, contentY+2, strconv.Itoa(c.Index+1))

	d.pdf.SetFont(bodyFont, "", bodyFontSize)
	d.ink(d.palette.Text)
	// Text starts just right of the badge.
	for i, line := range c.Lines {
		d.text(contentX+22, contentY+8+float64(i)*s.LineHeight, line)
	}
}

func (d *drawer) footer(indicator string) {
	s := d.spec
	footerY := s.PageHeight - 25

	d.stroke(d.palette.CardBorder)
	d.pdf.SetLineWidth(1)
	d.pdf.Line(s.Margin, footerY-8, s.PageWidth-s.Margin, footerY-8)

	d.fill(d.palette.Accent)
	d.pdf.Circle(s.PageWidth/2, footerY+2, 8, "F")

	d.pdf.SetFont(bodyFont, "", 8)
	d.pdf.SetTextColor(255, 255, 255)
	d.textCenter(s.PageWidth/2, footerY+6, indicator)

	d.pdf.SetFontSize(7)
	d.ink(d.palette.Secondary)
	d.text(s.Margin, footerY+5, "Powered by CruxPad AI")
}
