// Package pipeline wires the stages of icon vectorization together:
// load, flatten, trace, strip background, minify, write.
//
// Each Run call processes one image to completion with no shared state, so
// concurrent runs on independent inputs need no coordination. Intermediate
// files live in a per-run temporary directory that is removed on return.
//
// Fatal errors are wrapped with the name of the failing stage. A parse
// failure in the background-strip stage is deliberately not fatal: the
// unfiltered trace is carried forward and the degradation is flagged in
// the Report.
package pipeline
