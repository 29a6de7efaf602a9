// Package theme defines the light and dark color schemes used when a
// cheatsheet is displayed or exported.
package theme

import (
	"fmt"
	"strings"
)

// Theme is one of the two supported color schemes.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Palette is the fixed set of colors for one theme, as "#rrggbb" strings.
type Palette struct {
	Background string
	Text       string
	Heading    string
	Subheading string
	Accent     string
	CardBorder string
	Secondary  string
	// Cards is cycled through by card index.
	Cards []string
}

var palettes = map[Theme]Palette{
	Light: {
		Background: "#ffffff",
		Text:       "#0f172a",
		Heading:    "#4f46e5",
		Subheading: "#7c3aed",
		Accent:     "#db2777",
		CardBorder: "#6366f1",
		Secondary:  "#64748b",
		Cards:      []string{"#fef3c7", "#ecfdf5", "#f0f9ff", "#fef2f2", "#f3e8ff", "#ecfeff"},
	},
	Dark: {
		Background: "#0f172a",
		Text:       "#f8fafc",
		Heading:    "#a5b4fc",
		Subheading: "#c4b5fd",
		Accent:     "#f472b6",
		CardBorder: "#6366f1",
		Secondary:  "#94a3b8",
		Cards:      []string{"#1f2937", "#374151", "#1e293b", "#374151", "#1f2937", "#374151"},
	},
}

var displayColors = map[Theme][]string{
	Light: {"#e3f2fd", "#ffebee", "#e8f5e9", "#fff3e0", "#e0f7fa", "#fce4ec", "#f1f8e9", "#fff8e1"},
	Dark:  {"#0d47a1", "#b71c1c", "#1b5e20", "#e65100", "#006064", "#4a148c", "#33691e", "#827717"},
}

// Parse converts a user-supplied name into a Theme. Matching ignores case
// and surrounding whitespace.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// FromDarkMode maps the persisted dark-mode flag to a Theme.
func FromDarkMode(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == Dark }

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	_, ok := palettes[t]
	return ok
}

func (t Theme) String() string { return string(t) }

// Palette returns the export palette for t. Unknown themes get the light one.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Light]
}

// DisplayColors returns the on-screen card backgrounds for t.
func (t Theme) DisplayColors() []string {
	if c, ok := displayColors[t]; ok {
		return c
	}
	return displayColors[Light]
}

// CardColor returns the color for the card at index i, cycling through the
// palette.
func (p Palette) CardColor(i int) string {
	if len(p.Cards) == 0 {
		return p.Background
	}
	return p.Cards[i%len(p.Cards)]
}
