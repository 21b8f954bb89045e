// Package raster implements the flattening preprocessor that prepares icon
// images for vector tracing.
//
// The preprocessor converts an arbitrary RGBA raster into a hard-edged,
// fixed-palette RGB image in which every pixel is exactly one of the
// configured colors: the background key color or one of the foreground
// palette colors. Anti-aliased edges and partial alpha are eliminated so
// that a downstream tracer never sees fractional-opacity blends that would
// fragment into spurious shapes or color bands.
//
// # Pipeline
//
// Flatten applies four stages in order:
//
//  1. Optional Lanczos upscale, so the tracer works at higher resolution
//     and produces smoother curves. Classification happens after the
//     resample, never before, so the resampler cannot corrupt the palette.
//  2. Foreground test: a pixel is foreground when its alpha exceeds the
//     configured cutoff AND its color is farther than the background
//     threshold (Euclidean RGB) from the key color. The combined test
//     handles both alpha-transparent and fully-opaque keyed inputs.
//  3. Optional mask refinement: the boolean test is rendered as an 8-bit
//     matte, Gaussian-blurred, re-thresholded at 50%, and optionally
//     closed morphologically (dilate then erode) to remove single-pixel
//     defects that would otherwise trace into tiny junk shapes.
//  4. Palette snap: every foreground pixel is assigned the nearest palette
//     color by squared Euclidean distance (ties go to the first configured
//     color); every background pixel is assigned exactly the key color.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner.
//
// # Error Handling
//
// A nil or zero-dimension input image is reported as ErrInvalidImage. An
// empty palette or a malformed color spec is reported as ErrConfiguration
// before any pixel work begins. No partial output is ever produced.
package raster
