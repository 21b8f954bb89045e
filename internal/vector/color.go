package vector

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color as resolved from vector markup.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var rgbFuncRe = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// ParseColor normalizes a paint value from vector markup to an RGB triple.
//
// Two notations are accepted: 6-digit hex ("#rrggbb", case-insensitive)
// and functional "rgb(r,g,b)". Every other value — named colors, "none",
// "transparent", gradient/pattern references — is unknown: ok is false and
// the caller must never classify the element as background from it.
func ParseColor(s string) (RGB, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "none" {
		return RGB{}, false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) != 6 {
			return RGB{}, false
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, false
		}
		return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
	}

	if m := rgbFuncRe.FindStringSubmatch(v); m != nil {
		var ch [3]uint8
		for i, s := range m[1:] {
			n, err := strconv.Atoi(s)
			if err != nil || n > 255 {
				return RGB{}, false
			}
			ch[i] = uint8(n)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
	}

	return RGB{}, false
}

// Distance returns the Euclidean RGB distance to o in 8-bit channel units,
// so a tolerance of 0 demands an exact match and 441.67 spans the full
// black-to-white diagonal.
func (c RGB) Distance(o RGB) float64 {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}
	return a.DistanceRgb(b) * 255
}
