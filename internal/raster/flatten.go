package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage indicates an unreadable, nil, or zero-dimension raster.
var ErrInvalidImage = errors.New("invalid image")

// Config holds the flattening parameters.
//
// The zero value disables the optional stages (no upscale, no blur, no
// closing) and classifies on alpha alone with a zero background threshold.
type Config struct {
	// Scale is the integer upscale factor applied before classification.
	// Values below 2 leave the image at its original size.
	Scale int

	// AlphaCutoff is the hard alpha edge: pixels with alpha at or below
	// the cutoff are background regardless of color.
	AlphaCutoff int

	// BackgroundThreshold is the Euclidean RGB distance from the key color
	// at or below which an opaque pixel is still treated as background.
	BackgroundThreshold float64

	// BlurRadius is the Gaussian sigma used to smooth the foreground
	// matte before re-thresholding. Zero disables the blur.
	BlurRadius float64

	// ClosingSize is the window size of the morphological closing applied
	// to the matte. Values below 3 disable the closing.
	ClosingSize int
}

// Flatten converts an RGBA raster into a hard-edged, exact-palette RGB
// image suitable for vector tracing.
//
// Every pixel of the result is bit-identical to one of the configured
// colors: background pixels carry pal.Key, foreground pixels carry the
// nearest member of pal.Colors (ties to the first configured). The result
// is fully opaque, which prevents the tracer from synthesizing halo shapes
// around transparency.
//
// Flatten is a pure function of its inputs: it never mutates img, keeps no
// state between calls, and concurrent calls on independent images are safe.
//
// Errors: a nil or zero-dimension image wraps ErrInvalidImage; an empty
// palette wraps ErrConfiguration. On error no output image is produced.
func Flatten(img image.Image, pal Palette, cfg Config) (*image.RGBA, error) {
	if err := pal.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: zero-dimension image %dx%d", ErrInvalidImage, bounds.Dx(), bounds.Dy())
	}

	// Stage 1: optional smooth upscale. Lanczos blends colors at edges,
	// which is fine: classification runs on the resampled pixels, so the
	// exact-palette invariant is established afterwards.
	src := imaging.Clone(img)
	if cfg.Scale > 1 {
		src = imaging.Resize(src, bounds.Dx()*cfg.Scale, bounds.Dy()*cfg.Scale, imaging.Lanczos)
	}

	// Stages 2-3: foreground matte and its refinement.
	matte := refineMatte(buildMatte(src, pal, cfg), cfg)

	// Stage 4: palette snap.
	out := image.NewRGBA(src.Bounds())
	key := color.RGBA{R: pal.Key.R, G: pal.Key.G, B: pal.Key.B, A: 255}
	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			if matte.GrayAt(x, y).Y < matteThreshold {
				out.SetRGBA(x, y, key)
				continue
			}
			px := src.NRGBAAt(x, y)
			c := pal.Nearest(px.R, px.G, px.B)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out, nil
}
