package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/icontrace/icontrace/internal/pipeline"
	"github.com/icontrace/icontrace/internal/raster"
	"github.com/icontrace/icontrace/internal/trace"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint(*s) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	// Output
	output   = flag.String("out", "", "Output SVG path (default: input with .svg extension)")
	saveFlat = flag.Bool("save-flat", false, "Also write the flattened raster next to the output")

	// Palette
	whiteHex  = flag.String("white", "FFFFFF", "Primary foreground fill (6-digit hex)")
	accentHex = flag.String("accent", "276EE6", "Accent foreground fill (6-digit hex)")
	bgHex     = flag.String("bg", "FF00FF", "Background key color (6-digit hex)")

	// Flattening
	alphaCutoff = flag.Int("alpha-cutoff", 12, "Alpha <= cutoff becomes background")
	bgThreshold = flag.Float64("bg-threshold", 10, "RGB distance from key below which a pixel is background")
	scale       = flag.Int("scale", 6, "Upscale factor before flattening and tracing")
	blurRadius  = flag.Float64("blur", 0, "Gaussian sigma for mask smoothing (0 disables)")
	closingSize = flag.Int("close", 0, "Morphological closing window for the mask (<3 disables)")

	// SVG background removal
	bgTolerance = flag.Float64("bg-tol", 5.0, "RGB distance tolerance when removing key-colored elements")

	// Tracer
	useVtracer      = flag.Bool("vtracer", false, "Use the external vtracer binary instead of the builtin tracer")
	vtracerBin      = flag.String("vtracer-bin", "", "vtracer executable (default: vtracer on PATH)")
	traceMode       = flag.String("mode", "spline", "Curve fitting mode: spline, polygon, or none")
	hierarchical    = flag.String("hierarchical", "cutout", "Layering mode: stacked or cutout")
	filterSpeckle   = flag.Int("filter-speckle", 16, "Discard traced patches smaller than this (px)")
	cornerThreshold = flag.Int("corner-threshold", 80, "Minimum momentary angle to count as a corner")
	lengthThreshold = flag.Float64("length-threshold", 10.0, "Segment length for subdividing iterations")
	maxIterations   = flag.Int("max-iterations", 10, "Curve-fitting iteration cap")
	spliceThreshold = flag.Int("splice-threshold", 45, "Minimum angle displacement to splice a spline")
	pathPrecision   = flag.Int("path-precision", 2, "Decimal places in path coordinates")

	// Minifier
	minifySVG   = flag.Bool("minify", false, "Pipe the result through the external SVG optimizer")
	minifyTool  = flag.String("minify-tool", "", "Optimizer executable (default: scour on PATH)")
	minifyFlags stringList
)

func usage() {
	fmt.Fprintf(os.Stderr, "icontrace %s - flatten a raster icon and trace it to clean SVG\n\n", Version)
	fmt.Fprintf(os.Stderr, "Usage: icontrace [options] input.png [output.svg]\n\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("icontrace %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	flag.Var(&minifyFlags, "minify-flag", "Extra optimizer flag (repeatable)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)
	out := *output
	if flag.NArg() == 2 {
		out = flag.Arg(1)
	}

	opts := pipeline.Options{
		Input:         input,
		Output:        out,
		BackgroundHex: *bgHex,
		PaletteHex:    []string{*whiteHex, *accentHex},
		Raster: raster.Config{
			Scale:               *scale,
			AlphaCutoff:         *alphaCutoff,
			BackgroundThreshold: *bgThreshold,
			BlurRadius:          *blurRadius,
			ClosingSize:         *closingSize,
		},
		Tolerance:  *bgTolerance,
		UseVtracer: *useVtracer,
		VtracerBin: *vtracerBin,
		TraceParams: trace.Params{
			Mode:            *traceMode,
			Hierarchical:    *hierarchical,
			FilterSpeckle:   *filterSpeckle,
			ColorPrecision:  8,
			LayerDifference: 64,
			CornerThreshold: *cornerThreshold,
			LengthThreshold: *lengthThreshold,
			MaxIterations:   *maxIterations,
			SpliceThreshold: *spliceThreshold,
			PathPrecision:   *pathPrecision,
		},
		Minify:      *minifySVG,
		MinifyTool:  *minifyTool,
		MinifyFlags: minifyFlags,
		SaveFlat:    *saveFlat,
	}

	report, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		log.Fatalf("icontrace: %v", err)
	}

	if report.FilterDegraded {
		log.Printf("warning: traced SVG could not be parsed; background removal skipped")
	}
	log.Printf("Wrote %s (removed %d bg elems, stripped %d bg strokes)",
		report.Output, report.Removed, report.StrokesStripped)
}
