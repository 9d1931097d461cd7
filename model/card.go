package model

// Card is one self-contained instructional unit extracted from the source
// document. Cards are immutable after extraction; the layout engine reads
// them and the resolver orders pages by Index alone.
type Card struct {
	Title string   // page heading and TOC label, never empty after extraction
	Body  []string // normalized paragraphs, may be empty
	Code  string   // verbatim code text, empty if the card has none
	Index int      // zero-based position in the source document
}

// HasCode reports whether the card carries a code block.
func (c Card) HasCode() bool {
	return c.Code != ""
}
