// Package text provides script-direction detection for document content.
//
// Card documents can mix left-to-right and right-to-left scripts, sometimes
// within a single card. Direction is therefore resolved per content block at
// layout time, never as a document-wide setting:
//
//	dir := text.DetectDirection("مرحبا بالعالم")
//	if dir == text.RTL {
//	    // right-align the block and flip reading order
//	}
package text
