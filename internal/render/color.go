package render

import (
	"fmt"
	"html"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DarkText  = "#111827"
	LightText = "#FFFFFF"

	defaultFavicon = "#3B82F6"
)

// TextColor picks dark or light text for legibility on bg, using CIE Lab
// lightness. Unparseable colors get dark text.
func TextColor(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return DarkText
	}
	l, _, _ := c.Lab()
	if l < 0.6 {
		return LightText
	}
	return DarkText
}

// FaviconSVG draws a rounded square in hex with a paint-drop glyph.
// Falls back to blue when hex isn't a color.
func FaviconSVG(hex string) string {
	if _, err := colorful.Hex(hex); err != nil {
		hex = defaultFavicon
	}
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" rx="6" fill="%s"/>`+
			`<path d="M16 7 C16 7 9 15 9 19.5 A7 7 0 0 0 23 19.5 C23 15 16 7 16 7 Z" fill="%s" opacity="0.85"/></svg>`,
		html.EscapeString(hex), TextColor(hex),
	)
}
