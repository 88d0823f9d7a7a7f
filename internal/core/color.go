package core

import "fmt"

// RGB is a 24-bit color. Frontends map it to truecolor terminal styles or
// window pixels.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the default arena configuration.
var (
	ColorBlack = RGB{0, 0, 0}
	ColorWhite = RGB{255, 255, 255}
	ColorRed   = RGB{255, 0, 0}
	ColorGreen = RGB{0, 255, 0}
	ColorBlue  = RGB{0, 0, 255}
	ColorGray  = RGB{128, 128, 128}
)

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	var c RGB
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return c, fmt.Errorf("core: invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return c, nil
}
