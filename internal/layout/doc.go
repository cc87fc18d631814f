// Package layout fits text blocks into a bounding box.
//
// Nothing here measures text. Callers supply extents, either as fixed block
// sizes or through a Measure callback, which keeps the solver usable from a
// terminal (cells) as well as from a graphical renderer (pixels).
package layout
