package style

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	const maxByte = 255.0
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the color as "#AARRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

// ParseColor parses a color literal: "#RGB", "#RRGGBB", "#AARRGGBB",
// "transparent", or an SVG 1.1 color name such as "cornflowerblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return ColorTransparent, nil
	}
	if rgba, ok := colornames.Map[name]; ok {
		return RGBA(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

func parseHexColor(hex string) (Color, error) {
	digits := make([]uint8, 0, 8)
	for _, r := range hex {
		var v uint8
		switch {
		case r >= '0' && r <= '9':
			v = uint8(r - '0')
		case r >= 'a' && r <= 'f':
			v = uint8(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v = uint8(r-'A') + 10
		default:
			return 0, fmt.Errorf("invalid hex color digit %q", r)
		}
		digits = append(digits, v)
	}

	byteAt := func(i int) uint8 { return digits[i]<<4 | digits[i+1] }

	switch len(digits) {
	case 3: // #RGB
		r := digits[0]<<4 | digits[0]
		g := digits[1]<<4 | digits[1]
		b := digits[2]<<4 | digits[2]
		return RGB(r, g, b), nil
	case 6: // #RRGGBB
		return RGB(byteAt(0), byteAt(2), byteAt(4)), nil
	case 8: // #AARRGGBB
		return RGBA(byteAt(2), byteAt(4), byteAt(6), byteAt(0)), nil
	default:
		return 0, fmt.Errorf("invalid hex color length %d", len(digits))
	}
}

// UnmarshalYAML decodes a color from a YAML string scalar.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("color must be a string: %w", err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as "#AARRGGBB".
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
