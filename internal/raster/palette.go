package raster

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrConfiguration indicates an invalid palette or flattening configuration.
// It is always detected and returned before any pixel processing begins.
var ErrConfiguration = errors.New("invalid configuration")

// RGB is an opaque color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#rrggbb" notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements the color.Color interface; the color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// ParseHex parses a 6-digit hex color spec such as "FF00FF" or "#ff00ff".
//
// Shorthand (3-digit) and alpha-carrying (8-digit) forms are rejected:
// the flattening contract is defined over exact 8-bit RGB triples only.
// A malformed spec wraps ErrConfiguration.
func ParseHex(spec string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(spec), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: color %q: expected 6 hex digits", ErrConfiguration, spec)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: color %q: %v", ErrConfiguration, spec, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Palette holds the background key color and the ordered list of foreground
// colors a flattened image is allowed to contain.
//
// The key color is a sentinel chosen to be absent from real artwork; it
// marks "not foreground" pixels so they can be reliably deleted after
// tracing. The order of Colors matters: nearest-color ties resolve to the
// earliest entry.
type Palette struct {
	// Key is the background key color.
	Key RGB

	// Colors are the foreground colors, in configured order.
	Colors []RGB
}

// NewPalette builds a Palette from hex color specs. The first spec is the
// background key; the rest are foreground colors in order. An empty
// foreground list or any malformed spec wraps ErrConfiguration.
func NewPalette(keySpec string, colorSpecs ...string) (Palette, error) {
	key, err := ParseHex(keySpec)
	if err != nil {
		return Palette{}, err
	}
	if len(colorSpecs) == 0 {
		return Palette{}, fmt.Errorf("%w: palette needs at least one foreground color", ErrConfiguration)
	}
	colors := make([]RGB, 0, len(colorSpecs))
	for _, spec := range colorSpecs {
		c, err := ParseHex(spec)
		if err != nil {
			return Palette{}, err
		}
		colors = append(colors, c)
	}
	return Palette{Key: key, Colors: colors}, nil
}

// Validate checks the palette for use as a flattening target.
func (p Palette) Validate() error {
	if len(p.Colors) == 0 {
		return fmt.Errorf("%w: empty palette", ErrConfiguration)
	}
	return nil
}

// Nearest returns the foreground color closest to (r,g,b) by squared
// Euclidean distance. Ties resolve to the earliest configured color.
// The palette must be non-empty.
func (p Palette) Nearest(r, g, b uint8) RGB {
	best := p.Colors[0]
	bestDist := sqDist(r, g, b, best)
	for _, c := range p.Colors[1:] {
		if d := sqDist(r, g, b, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// KeyDistance returns the Euclidean RGB distance from (r,g,b) to the
// background key color.
func (p Palette) KeyDistance(r, g, b uint8) float64 {
	return math.Sqrt(float64(sqDist(r, g, b, p.Key)))
}

func sqDist(r, g, b uint8, c RGB) int {
	dr := int(r) - int(c.R)
	dg := int(g) - int(c.G)
	db := int(b) - int(c.B)
	return dr*dr + dg*dg + db*db
}
