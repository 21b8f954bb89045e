package raster

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// matteThreshold is the 50% re-threshold level applied after blurring.
const matteThreshold = 128

// buildMatte renders the per-pixel foreground test as an 8-bit grayscale
// matte: 255 where the pixel is foreground, 0 where it is background.
//
// A pixel is foreground when its alpha exceeds cfg.AlphaCutoff AND its
// color is farther than cfg.BackgroundThreshold from the palette key.
func buildMatte(img *image.NRGBA, pal Palette, cfg Config) *image.Gray {
	bounds := img.Bounds()
	matte := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			if int(px.A) <= cfg.AlphaCutoff {
				continue
			}
			if pal.KeyDistance(px.R, px.G, px.B) <= cfg.BackgroundThreshold {
				continue
			}
			matte.SetGray(x, y, gray255)
		}
	}
	return matte
}

var gray255 = color.Gray{Y: 255}

// refineMatte smooths the jagged boundaries left by per-pixel thresholding.
//
// The matte is Gaussian-blurred with cfg.BlurRadius as sigma and
// re-thresholded at 50%. If cfg.ClosingSize >= 3, a morphological closing
// (dilate then erode) of that window size follows, filling single-pixel
// gaps without growing the overall silhouette. Either step is skipped when
// its parameter disables it.
func refineMatte(matte *image.Gray, cfg Config) *image.Gray {
	out := matte
	if cfg.BlurRadius > 0 {
		blurred := imaging.Blur(out, cfg.BlurRadius)
		out = rethreshold(blurred, matteThreshold)
	}
	if cfg.ClosingSize >= 3 {
		// Dilation and erosion radii derive from the window size: a kxk
		// structuring element corresponds to radius k/2.
		radius := float64(cfg.ClosingSize / 2)
		closed := effect.Erode(effect.Dilate(out, radius), radius)
		out = rethreshold(closed, matteThreshold)
	}
	return out
}

// rethreshold converts any image back to a binary grayscale matte, treating
// a red channel at or above the cutoff as foreground. The blur and
// morphology helpers return color images; on a grayscale source all three
// channels are equal, so sampling red is sufficient.
func rethreshold(img image.Image, cutoff uint8) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if uint8(r>>8) >= cutoff {
				out.SetGray(x, y, gray255)
			}
		}
	}
	return out
}
