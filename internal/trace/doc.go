// Package trace turns a flattened keyed raster into vector markup.
//
// Two tracers are provided behind the same interface. Vtracer shells out
// to the external vtracer binary with a fixed set of named parameters that
// this package supplies but does not interpret. Builtin is a pure-Go
// fallback that traces one binary mask per palette color with gotrace and
// composes the resulting paths into a single SVG document, emitting the
// background key as a full-canvas rectangle so the downstream filter sees
// the same artifact shape either way.
package trace
