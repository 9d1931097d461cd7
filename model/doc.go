// Package model defines the data types shared by the conversion pipeline.
//
// A source document is an ordered sequence of [Card] values produced by the
// htmldoc package. The layout package turns each Card into a [DraftPage] of
// positioned content blocks, the resolver package assigns page numbers and
// finalizes navigation to produce a [Document], and the writer package
// serializes that Document to PDF.
//
// Page numbering follows a fixed convention: page 1 is always the table of
// contents, and the card at index i lands on page i+2. The resolver package
// owns that assignment; nothing else in the pipeline sets page numbers.
package model
