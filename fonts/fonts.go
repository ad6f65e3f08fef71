// Package fonts resolves the family names used in canvas font specs to
// x/image faces. The Go fonts are embedded, so every family is always
// available; an unknown family falls back to the bitmap basicfont face.
package fonts

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family names understood by Face and TTF.
const (
	Sans = "sans-serif"
	Bold = "bold"
	Mono = "monospace"
)

var aliases = map[string]string{
	"sans":       Sans,
	"sans-serif": Sans,
	"serif":      Sans,
	"regular":    Sans,
	"bold":       Bold,
	"mono":       Mono,
	"monospace":  Mono,
}

var ttf = map[string][]byte{
	Sans: goregular.TTF,
	Bold: gobold.TTF,
	Mono: gomono.TTF,
}

type faceKey struct {
	family string
	size   float64
}

var (
	mu     sync.Mutex
	parsed = map[string]*opentype.Font{}
	faces  = map[faceKey]font.Face{}
)

// Canonical maps a family name or alias to one of Sans, Bold or Mono. The
// boolean is false when the name is unknown.
func Canonical(family string) (string, bool) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(family))]
	return f, ok
}

// TTF returns the raw font file for family, for hosts that parse fonts
// themselves. Unknown families get the sans face.
func TTF(family string) []byte {
	f, ok := Canonical(family)
	if !ok {
		f = Sans
	}
	return ttf[f]
}

// Face returns a cached face for family at size pixels (72 DPI, so points
// equal pixels).
func Face(family string, size float64) font.Face {
	f, ok := Canonical(family)
	if !ok {
		slog.Warn("unknown font family, using sans", slog.String("family", family))
		f = Sans
	}
	if size <= 0 {
		size = 16
	}

	mu.Lock()
	defer mu.Unlock()
	key := faceKey{family: f, size: size}
	if face, ok := faces[key]; ok {
		return face
	}
	face, err := newFace(f, size)
	if err != nil {
		slog.Warn("font face unavailable, using basic font", slog.String("family", f), slog.Any("err", err))
		return basicfont.Face7x13
	}
	faces[key] = face
	return face
}

func newFace(family string, size float64) (font.Face, error) {
	otf, ok := parsed[family]
	if !ok {
		var err error
		otf, err = opentype.Parse(ttf[family])
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", family, err)
		}
		parsed[family] = otf
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face %s %gpx: %w", family, size, err)
	}
	return face, nil
}

// Metrics is the pixel extent of a string drawn with a face.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Measure reports the advance width and the face's ascent and descent.
func Measure(face font.Face, s string) Metrics {
	m := face.Metrics()
	adv := font.MeasureString(face, s)
	return Metrics{
		Width:   float64(adv) / 64,
		Ascent:  float64(m.Ascent) / 64,
		Descent: float64(m.Descent) / 64,
	}
}
