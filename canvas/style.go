package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Brush is anything a host can paint with. Hosts handle plain colors;
// gradients and patterns are not supported.
type Brush = color.Color

// StrokeStyle is the persistent line state. Width is in raster pixels.
type StrokeStyle struct {
	Brush Brush
	Width float64
}

// FillStyle is the persistent fill state.
type FillStyle struct {
	Brush Brush
}

// FontStyle is the persistent text state.
type FontStyle struct {
	Brush Brush
	Font  Font
}

// Font names a face and its size in raster pixels.
type Font struct {
	Family string
	Size   float64
}

// RemPixels is the pixel size of one "rem" in font specs.
const RemPixels = 16.0

// DefaultFont is used until SetFont is called.
var DefaultFont = Font{Family: "sans-serif", Size: RemPixels}

func (f Font) String() string {
	return fmt.Sprintf("%spx %s", strconv.FormatFloat(f.Size, 'f', -1, 64), f.Family)
}

// ParseFont reads a CSS-like font shorthand such as "16px sans-serif" or
// "1rem mono". Missing parts fall back to DefaultFont.
func ParseFont(spec string) (Font, error) {
	f := DefaultFont
	var family []string
	for _, tok := range strings.Fields(spec) {
		size, ok, err := parseFontSize(tok)
		if err != nil {
			return Font{}, fmt.Errorf("parse font %q: %w", spec, err)
		}
		if ok {
			f.Size = size
			continue
		}
		family = append(family, tok)
	}
	if len(family) > 0 {
		f.Family = strings.Join(family, " ")
	}
	return f, nil
}

func parseFontSize(tok string) (float64, bool, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"rem", RemPixels},
		{"px", 1},
		{"pt", 4.0 / 3.0},
	}
	for _, u := range units {
		num, found := strings.CutSuffix(tok, u.suffix)
		if !found {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			// a family name such as "script" that happens to end in a unit
			return 0, false, nil
		}
		if v <= 0 {
			return 0, false, fmt.Errorf("non-positive size %q", tok)
		}
		return v * u.scale, true, nil
	}
	return 0, false, nil
}

// ParseBrush turns a color name ("white", "green") or hex notation
// ("#bfb", "#00ff00", "#00ff0080") into a Brush.
func ParseBrush(s string) (Brush, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if s == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// MustBrush is ParseBrush for literals known to be valid.
func MustBrush(s string) Brush {
	b, err := ParseBrush(s)
	if err != nil {
		panic(err)
	}
	return b
}

func parseHex(h string) (Brush, error) {
	var digits [8]uint8
	switch len(h) {
	case 3, 4:
		for i := 0; i < len(h); i++ {
			v, err := strconv.ParseUint(h[i:i+1], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad hex color %q: %w", h, err)
			}
			digits[i] = uint8(v * 17)
		}
		if len(h) == 3 {
			digits[3] = 0xff
		}
	case 6, 8:
		for i := 0; i < len(h); i += 2 {
			v, err := strconv.ParseUint(h[i:i+2], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad hex color %q: %w", h, err)
			}
			digits[i/2] = uint8(v)
		}
		if len(h) == 6 {
			digits[3] = 0xff
		}
	default:
		return nil, fmt.Errorf("bad hex color %q", h)
	}
	return color.NRGBA{R: digits[0], G: digits[1], B: digits[2], A: digits[3]}, nil
}
