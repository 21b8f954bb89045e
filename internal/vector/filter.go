package vector

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// ErrMalformedDocument indicates vector markup that could not be parsed.
// Callers receive the original text unchanged alongside this error, so the
// cleanup stage can degrade to a no-op instead of discarding a valid trace.
var ErrMalformedDocument = errors.New("malformed vector document")

// FilterResult is the outcome of a StripBackground pass.
type FilterResult struct {
	// Text is the serialized document after filtering. On parse failure or
	// when the degenerate-output guard fires, it is the input unchanged.
	Text string

	// Removed is the number of elements deleted from the tree.
	Removed int

	// StrokesStripped is the number of elements whose background-colored
	// stroke was set to "none" while the element itself survived.
	StrokesStripped int
}

// StripBackground deletes flattening artifacts from traced vector markup.
//
// An element is removed outright when its effective fill is within
// tolerance (Euclidean RGB) of the background key AND it either has no
// resolvable stroke or its stroke is also within tolerance. An element
// that survives but carries a background-colored stroke has the stroke
// neutralized to "none" instead; this strips tracer halo outlines without
// destroying the shape's fill.
//
// Effective fill and stroke resolve from the direct attribute first, then
// from the combined style attribute (case-insensitive key match). Colors
// in any other notation than 6-digit hex or rgb(r,g,b) are unknown and
// never match the background.
//
// Two guard behaviors are deliberate policy:
//   - Unparsable input returns the original text with zero counts and a
//     wrapped ErrMalformedDocument; callers log it and carry on.
//   - If removal would delete every fill-carrying element, the original
//     text is returned unchanged with zero counts, so the pass never
//     produces an empty, useless document.
func StripBackground(docText string, key RGB, tolerance float64) (*FilterResult, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(docText); err != nil {
		return &FilterResult{Text: docText}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	root := doc.Root()
	if root == nil {
		return &FilterResult{Text: docText}, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}

	// Snapshot the tree before mutating so removals never skip or revisit
	// siblings mid-walk.
	elements := collectElements(root, nil)

	var toRemove, toStrip []*etree.Element
	fillCarrying := 0
	for _, el := range elements {
		fill, fillOK := resolvePaint(el, "fill")
		stroke, strokeOK := resolvePaint(el, "stroke")
		if fillOK {
			fillCarrying++
		}

		fillIsBG := fillOK && fill.Distance(key) <= tolerance
		strokeIsBG := strokeOK && stroke.Distance(key) <= tolerance

		switch {
		case fillIsBG && (!strokeOK || strokeIsBG) && el.Parent() != nil:
			toRemove = append(toRemove, el)
		case strokeIsBG:
			toStrip = append(toStrip, el)
		}
	}

	// Degenerate guard: refusing to hollow out the whole document beats
	// emitting markup with nothing visible left in it.
	if len(toRemove) > 0 && len(toRemove) == fillCarrying {
		return &FilterResult{Text: docText}, nil
	}

	for _, el := range toRemove {
		el.Parent().RemoveChild(el)
	}
	for _, el := range toStrip {
		neutralizeStroke(el)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return &FilterResult{Text: docText}, fmt.Errorf("%w: serialize: %v", ErrMalformedDocument, err)
	}
	return &FilterResult{
		Text:            out,
		Removed:         len(toRemove),
		StrokesStripped: len(toStrip),
	}, nil
}

// collectElements appends el and all its descendants to dst in document
// order.
func collectElements(el *etree.Element, dst []*etree.Element) []*etree.Element {
	dst = append(dst, el)
	for _, child := range el.ChildElements() {
		dst = collectElements(child, dst)
	}
	return dst
}

// resolvePaint determines the effective fill or stroke color of an element:
// the direct attribute when present, otherwise the style declaration.
func resolvePaint(el *etree.Element, prop string) (RGB, bool) {
	if v := el.SelectAttrValue(prop, ""); v != "" {
		return ParseColor(v)
	}
	style := ParseStyle(el.SelectAttrValue("style", ""))
	if v, ok := style.Get(prop); ok {
		return ParseColor(v)
	}
	return RGB{}, false
}

// neutralizeStroke sets the element's stroke to "none", writing back to
// whichever representation carried it.
func neutralizeStroke(el *etree.Element) {
	if el.SelectAttr("stroke") != nil {
		el.CreateAttr("stroke", "none")
		return
	}
	style := ParseStyle(el.SelectAttrValue("style", ""))
	style.Set("stroke", "none")
	el.CreateAttr("style", style.String())
}
