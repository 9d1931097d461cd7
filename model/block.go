package model

import "github.com/tsawler/carousel/text"

// BlockType identifies the kind of a content block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeading
	BlockTypeParagraph
	BlockTypeCode
	BlockTypeNav
	BlockTypeTOCEntry
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeading:
		return "Heading"
	case BlockTypeParagraph:
		return "Paragraph"
	case BlockTypeCode:
		return "Code"
	case BlockTypeNav:
		return "Nav"
	case BlockTypeTOCEntry:
		return "TOCEntry"
	default:
		return "Unknown"
	}
}

// Block is the interface for all positioned page content. Blocks are owned
// exclusively by the page that carries them and are never shared.
type Block interface {
	Type() BlockType
	BoundingBox() BBox
}

// HeadingBlock is a page title with an underline rule.
type HeadingBlock struct {
	Text     string
	Dir      text.Direction
	FontSize float64
	BBox     BBox
}

func (h *HeadingBlock) Type() BlockType { return BlockTypeHeading }
func (h *HeadingBlock) BoundingBox() BBox { return h.BBox }

// ParagraphBlock is body text already wrapped to the content width. Lines
// are in logical character order; Dir tells the renderer which edge to
// align to.
type ParagraphBlock struct {
	Lines      []string
	Dir        text.Direction
	FontSize   float64
	LineHeight float64
	BBox       BBox
}

func (p *ParagraphBlock) Type() BlockType { return BlockTypeParagraph }
func (p *ParagraphBlock) BoundingBox() BBox { return p.BBox }

// CodeBlock is preformatted text rendered on a shaded background in a
// monospaced face. Lines keep their source whitespace exactly; they are
// never re-wrapped.
type CodeBlock struct {
	Lines      []string
	FontSize   float64
	LineHeight float64
	BBox       BBox
}

func (c *CodeBlock) Type() BlockType { return BlockTypeCode }
func (c *CodeBlock) BoundingBox() BBox { return c.BBox }

// Text returns the code joined back into a single string.
func (c *CodeBlock) Text() string {
	s := ""
	for i, line := range c.Lines {
		if i > 0 {
			s += "\n"
		}
		s += line
	}
	return s
}

// NavBlock is the navigation bar at the bottom of a card page. The layout
// engine emits it with zero targets as a placeholder; the resolver fills the
// targets once the total page count is known. A zero target means the
// control is absent (no previous page on the first card, no next page on
// the last).
type NavBlock struct {
	Prev       int // page number, 0 if none
	Next       int // page number, 0 if none
	TOC        int // always 1 once resolved
	PageNumber int // this page's own number, 0 until resolved
	PageCount  int // total pages, 0 until resolved
	BBox       BBox
}

func (n *NavBlock) Type() BlockType { return BlockTypeNav }
func (n *NavBlock) BoundingBox() BBox { return n.BBox }

// TOCEntryBlock is one row of the table of contents: a card title paired
// with its resolved page number.
type TOCEntryBlock struct {
	Ordinal int // 1-based row number
	Title   string
	Page    int
	Dir     text.Direction
	BBox    BBox
}

func (e *TOCEntryBlock) Type() BlockType { return BlockTypeTOCEntry }
func (e *TOCEntryBlock) BoundingBox() BBox { return e.BBox }
