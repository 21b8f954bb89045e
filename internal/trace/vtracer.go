package trace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrExternalTool indicates a tracer subprocess that exited non-zero or
// could not be started. The tool's diagnostic output is attached.
var ErrExternalTool = errors.New("external tool failed")

// Tracer converts a flattened raster file into vector markup on disk.
type Tracer interface {
	// Trace reads the raster at rasterPath and writes SVG markup to
	// svgPath. Implementations do not modify the input file.
	Trace(ctx context.Context, rasterPath, svgPath string) error
}

// Params is the tracer parameter set, passed through uninterpreted.
// Flat-palette input makes most of these forgiving; the defaults match
// moderate settings that produce clean output from hard-edged rasters.
type Params struct {
	Mode            string  // curve fitting: "spline", "polygon", or "none"
	Hierarchical    string  // layering: "stacked" or "cutout"
	FilterSpeckle   int     // discard patches smaller than this (px)
	ColorPrecision  int     // significant bits per RGB channel
	LayerDifference int     // color difference between gradient layers
	CornerThreshold int     // minimum momentary angle to count as a corner
	LengthThreshold float64 // segment length for subdividing iterations
	MaxIterations   int     // curve-fitting iteration cap
	SpliceThreshold int     // minimum angle displacement to splice a spline
	PathPrecision   int     // decimal places in path coordinates
}

// DefaultParams returns the parameter set tuned for flattened icon input.
func DefaultParams() Params {
	return Params{
		Mode:            "spline",
		Hierarchical:    "cutout",
		FilterSpeckle:   16,
		ColorPrecision:  8,
		LayerDifference: 64,
		CornerThreshold: 80,
		LengthThreshold: 10.0,
		MaxIterations:   10,
		SpliceThreshold: 45,
		PathPrecision:   2,
	}
}

// Vtracer invokes the external vtracer binary.
type Vtracer struct {
	// Bin is the executable to run. Empty means "vtracer" on PATH.
	Bin string

	// Params configures the trace. The zero value is replaced by
	// DefaultParams.
	Params Params
}

// Trace runs vtracer on rasterPath, writing SVG to svgPath. A missing
// binary or non-zero exit wraps ErrExternalTool with vtracer's stderr
// attached.
func (v *Vtracer) Trace(ctx context.Context, rasterPath, svgPath string) error {
	bin := v.Bin
	if bin == "" {
		bin = "vtracer"
	}
	p := v.Params
	if p == (Params{}) {
		p = DefaultParams()
	}

	args := []string{
		"--input", rasterPath,
		"--output", svgPath,
		"--colormode", "color",
		"--mode", p.Mode,
		"--hierarchical", p.Hierarchical,
		"--filter_speckle", strconv.Itoa(p.FilterSpeckle),
		"--color_precision", strconv.Itoa(p.ColorPrecision),
		"--gradient_step", strconv.Itoa(p.LayerDifference),
		"--corner_threshold", strconv.Itoa(p.CornerThreshold),
		"--segment_length", strconv.FormatFloat(p.LengthThreshold, 'f', -1, 64),
		"--splice_threshold", strconv.Itoa(p.SpliceThreshold),
		"--path_precision", strconv.Itoa(p.PathPrecision),
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v: %s", ErrExternalTool, bin, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
