// Package resolver assigns page numbers and finalizes cross-references.
//
// Page numbering is a pure function of card position: the table of contents
// is always page 1 and the card at index i lands on page i+2. Because the
// numbering never depends on mutable counters, resolution is deterministic
// and safe under document-parallel batch conversion.
//
// [Resolve] runs once, after the complete draft sequence is known. It
// cannot be streamed card by card: the last card's terminal navigation
// state and the complete TOC entry list both depend on the total count.
package resolver
