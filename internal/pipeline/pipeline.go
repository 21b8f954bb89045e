package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/icontrace/icontrace/internal/minify"
	"github.com/icontrace/icontrace/internal/raster"
	"github.com/icontrace/icontrace/internal/trace"
	"github.com/icontrace/icontrace/internal/vector"
)

// Options configures one pipeline run.
type Options struct {
	// Input is the source raster path (PNG, JPEG, or GIF).
	Input string

	// Output is the destination SVG path. Empty means the input path with
	// its extension replaced by ".svg".
	Output string

	// BackgroundHex is the 6-digit hex spec of the background key color.
	BackgroundHex string

	// PaletteHex are the 6-digit hex specs of the foreground colors, in
	// priority order (nearest-color ties resolve to the earliest).
	PaletteHex []string

	// Raster holds the flattening thresholds.
	Raster raster.Config

	// Tolerance is the Euclidean RGB distance within which a vector
	// element's color counts as background. Independent of
	// Raster.BackgroundThreshold: one governs pixels, the other shapes.
	Tolerance float64

	// UseVtracer selects the external vtracer binary over the builtin
	// tracer.
	UseVtracer bool

	// VtracerBin overrides the vtracer executable name.
	VtracerBin string

	// TraceParams configures the tracer. Zero value means defaults.
	TraceParams trace.Params

	// Minify pipes the cleaned SVG through the external optimizer.
	Minify bool

	// MinifyTool overrides the optimizer executable name.
	MinifyTool string

	// MinifyFlags are appended to the optimizer's default flag set.
	MinifyFlags []string

	// SaveFlat additionally writes the flattened raster next to the
	// output as "<output-base>.flat.png" for debugging.
	SaveFlat bool
}

// Report summarizes a successful run.
type Report struct {
	// Output is the path the final SVG was written to.
	Output string

	// Width and Height are the flattened raster dimensions after upscale.
	Width  int
	Height int

	// Removed is the number of background elements deleted from the trace.
	Removed int

	// StrokesStripped is the number of halo strokes neutralized.
	StrokesStripped int

	// FilterDegraded is true when the traced markup could not be parsed
	// and the unfiltered trace was carried forward as-is.
	FilterDegraded bool
}

// OutputPath resolves the destination for an input path: the explicit
// output when set, otherwise the input with its extension replaced by
// ".svg".
func OutputPath(input, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

// Run executes the full pipeline for one image.
//
// Stages: load and flatten the raster, write it to a temporary PNG, trace
// it to SVG, strip background-key artifacts, optionally minify, then write
// the result. No output file is written on a fatal error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	pal, err := raster.NewPalette(opts.BackgroundHex, opts.PaletteHex...)
	if err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}

	img, err := raster.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	flat, err := raster.Flatten(img, pal, opts.Raster)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "icontrace")
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	flatPNG := filepath.Join(tmpDir, "flat.png")
	if err := raster.SavePNG(flatPNG, flat); err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	rawSVG := filepath.Join(tmpDir, "raw.svg")
	if err := tracer(opts, pal).Trace(ctx, flatPNG, rawSVG); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	traced, err := os.ReadFile(rawSVG)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}

	report := &Report{
		Output: OutputPath(opts.Input, opts.Output),
		Width:  flat.Bounds().Dx(),
		Height: flat.Bounds().Dy(),
	}

	key := vector.RGB{R: pal.Key.R, G: pal.Key.G, B: pal.Key.B}
	filtered, err := vector.StripBackground(string(traced), key, opts.Tolerance)
	if err != nil {
		if !errors.Is(err, vector.ErrMalformedDocument) {
			return nil, fmt.Errorf("strip background: %w", err)
		}
		// Best effort: an unparsable trace passes through unfiltered
		// rather than aborting the run.
		report.FilterDegraded = true
	}
	text := filtered.Text
	report.Removed = filtered.Removed
	report.StrokesStripped = filtered.StrokesStripped

	if opts.Minify {
		flags := append(append([]string{}, minify.DefaultFlags...), opts.MinifyFlags...)
		text, err = minify.Run(ctx, text, opts.MinifyTool, flags)
		if err != nil {
			return nil, fmt.Errorf("minify: %w", err)
		}
	}

	if opts.SaveFlat {
		flatOut := strings.TrimSuffix(report.Output, filepath.Ext(report.Output)) + ".flat.png"
		if err := raster.SavePNG(flatOut, flat); err != nil {
			return nil, fmt.Errorf("save flat: %w", err)
		}
	}

	if err := os.WriteFile(report.Output, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	return report, nil
}

// tracer picks the configured tracer implementation.
func tracer(opts Options, pal raster.Palette) trace.Tracer {
	if opts.UseVtracer {
		return &trace.Vtracer{Bin: opts.VtracerBin, Params: opts.TraceParams}
	}
	return &trace.Builtin{Palette: pal}
}
