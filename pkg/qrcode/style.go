package qrcode

import (
	"fmt"
	"image/color"
	"strings"
)

// Style selects how modules are painted. The set is closed.
type Style uint8

const (
	StyleStandard Style = iota
	StyleTinted
	StyleRounded
	StyleDotted
)

// String returns the canonical style name.
func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "standard"
	case StyleTinted:
		return "tinted"
	case StyleRounded:
		return "rounded"
	case StyleDotted:
		return "dotted"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	return s <= StyleDotted
}

// ParseStyle maps a style identifier to a Style. Canonical names and the legacy
// identifiers "kiwi" and "dots" are accepted, case-insensitively.
func ParseStyle(id string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "standard":
		return StyleStandard, nil
	case "tinted", "kiwi":
		return StyleTinted, nil
	case "rounded":
		return StyleRounded, nil
	case "dotted", "dots":
		return StyleDotted, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
}

// ColorScheme is the pair of colors a style paints with.
type ColorScheme struct {
	Dark  color.RGBA
	Light color.RGBA
}

var schemes = [...]ColorScheme{
	StyleStandard: {Dark: rgb(0x00, 0x00, 0x00), Light: rgb(0xff, 0xff, 0xff)},
	StyleTinted:   {Dark: rgb(0x3f, 0xa0, 0x5f), Light: rgb(0xf4, 0xfb, 0xf6)},
	StyleRounded:  {Dark: rgb(0x2d, 0x78, 0x49), Light: rgb(0xff, 0xff, 0xff)},
	StyleDotted:   {Dark: rgb(0x1e, 0x50, 0x33), Light: rgb(0xe6, 0xf6, 0xeb)},
}

// Resolve returns the color scheme of a style.
// Unknown styles fail with ErrUnknownStyle; there is no fallback.
func Resolve(s Style) (ColorScheme, error) {
	if !s.Valid() {
		return ColorScheme{}, fmt.Errorf("%w: %s", ErrUnknownStyle, s)
	}
	return schemes[s], nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
