// Package minify pipes vector markup through an external SVG optimizer.
//
// The optimizer runs as a subprocess with the markup on stdin and the
// minified result on stdout. A non-zero exit is fatal for the pipeline and
// surfaces the tool's stderr. The default tool is scour with a flag set
// that strips the XML prolog, metadata, and document IDs.
package minify
