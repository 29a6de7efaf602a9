package render

import (
	"fmt"
	"strconv"
	"strings"
)

type rgb struct {
	r, g, b int
}

// parseHex converts "#rrggbb" or "#rgb" to its components.
func parseHex(s string) (rgb, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return rgb{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return rgb{r: int(v >> 16 & 0xff), g: int(v >> 8 & 0xff), b: int(v & 0xff)}, nil
}

// mustHex is parseHex for palette constants; bad input renders black.
func mustHex(s string) rgb {
	c, err := parseHex(s)
	if err != nil {
		return rgb{}
	}
	return c
}
