// Package vector removes flattening artifacts from traced SVG documents.
//
// A tracer fed a key-colored flattened raster faithfully traces the
// background as real shapes and often adds key-colored halo strokes around
// foreground shapes. StripBackground walks the parsed document, deletes
// elements whose effective fill (and stroke, when present) match the
// background key color within a tolerance, and neutralizes key-colored
// strokes on elements that otherwise survive.
//
// Colors are resolved from a direct fill/stroke attribute first, then from
// the combined style string. Both 6-digit hex and functional rgb(r,g,b)
// notations are understood; anything else (named colors, "none", gradient
// references) is unknown and never treated as background.
//
// Parse failures degrade to a pass-through: the original text is returned
// unchanged together with a wrapped ErrMalformedDocument, so a broken
// cleanup stage never discards a valid trace.
package vector
