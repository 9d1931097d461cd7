// Package writer serializes a resolved document to PDF.
//
// The [Writer] walks the resolved page sequence once, in ascending page
// order, drawing each content block and wiring internal links: every
// navigation control and TOC row becomes a clickable region targeting its
// resolved page, and every card page gets a PDF bookmark.
//
// Output is all-or-nothing: the document is rendered to memory, then
// written to a temporary file next to the destination and atomically
// renamed into place. A failure partway through never leaves a partial
// file behind.
//
// Text measurement for the layout pass is exposed through [Writer.Width],
// which satisfies the layout package's Measurer interface using the same
// font metrics the final render uses.
package writer
