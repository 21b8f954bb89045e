package trace

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/gotranspile/gotrace"

	"github.com/icontrace/icontrace/internal/raster"
)

// Builtin is a pure-Go tracer built on gotrace. It traces one binary mask
// per palette color and composes the paths into a single SVG document.
// The background key is emitted as a full-canvas rectangle underneath the
// shapes, mirroring what a color tracer produces from a keyed raster.
type Builtin struct {
	// Palette identifies the key color and the foreground colors to lift
	// into masks. The input raster is expected to be exact-palette; any
	// pixel not bit-identical to a foreground color lands in no mask.
	Palette raster.Palette
}

// Trace reads the flattened raster at rasterPath and writes composed SVG
// markup to svgPath.
func (b *Builtin) Trace(ctx context.Context, rasterPath, svgPath string) error {
	img, err := raster.Load(rasterPath)
	if err != nil {
		return err
	}

	text, err := b.TraceImage(ctx, img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(svgPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", svgPath, err)
	}
	return nil
}

// TraceImage traces an in-memory flattened raster and returns the SVG text.
func (b *Builtin) TraceImage(ctx context.Context, img image.Image) (string, error) {
	if err := b.Palette.Validate(); err != nil {
		return "", err
	}
	bounds := img.Bounds()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(bounds.Dx(), bounds.Dy())
	canvas.Rect(0, 0, bounds.Dx(), bounds.Dy(), "fill:"+b.Palette.Key.Hex())

	for _, c := range b.Palette.Colors {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		paths, err := tracePaths(maskForColor(img, c))
		if err != nil {
			return "", fmt.Errorf("trace %s: %w", c.Hex(), err)
		}
		for _, d := range paths {
			canvas.Path(d, "fill:"+c.Hex())
		}
	}
	canvas.End()
	return buf.String(), nil
}

// maskForColor lifts the pixels bit-identical to c into a binary mask.
func maskForColor(img image.Image, c raster.RGB) *image.Gray {
	bounds := img.Bounds()
	mask := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if uint8(r>>8) == c.R && uint8(g>>8) == c.G && uint8(b>>8) == c.B {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return mask
}

// tracePaths runs gotrace over a binary mask and returns the path data of
// every traced contour. gotrace renders a complete SVG document per mask;
// only the "d" attributes are lifted out for recomposition.
func tracePaths(mask *image.Gray) ([]string, error) {
	bm := gotrace.BitmapFromGray(mask, nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return nil, err
	}
	if paths == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return nil, err
	}
	return extractPathData(buf.Bytes())
}

// extractPathData pulls the "d" attribute of every <path> in an SVG
// fragment.
func extractPathData(svgText []byte) ([]string, error) {
	type path struct {
		D string `xml:"d,attr"`
	}
	var doc struct {
		Paths []path `xml:"path"`
	}
	if err := xml.Unmarshal(svgText, &doc); err != nil {
		return nil, fmt.Errorf("parse traced svg: %w", err)
	}
	out := make([]string, len(doc.Paths))
	for i, p := range doc.Paths {
		out[i] = p.D
	}
	return out, nil
}
