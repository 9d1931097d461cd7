package resolver

import (
	"github.com/tsawler/carousel/model"
	"github.com/tsawler/carousel/text"
)

// TOCPageNumber is the fixed page number of the table of contents.
const TOCPageNumber = 1

// TOC page layout constants, in points.
const (
	tocHeadingLeading = 1.3
	tocHeadingGap     = 30.0
	tocRowFactor      = 2.0 // row height as a multiple of the body font size
)

// PageNumber returns the output page number for the card at zero-based
// index i. Page 1 is reserved for the table of contents, so the bijection
// is i+2.
func PageNumber(index int) int {
	return index + 2
}

// Resolve turns draft pages into the final document: it assigns page
// numbers, builds the TOC page, and fills every navigation placeholder with
// resolved targets. The first card has no previous target and the last card
// has no next target; every page links back to the TOC.
func Resolve(title string, drafts []model.DraftPage, geom model.PageGeometry) *model.Document {
	n := len(drafts)

	doc := &model.Document{
		Title:    title,
		Geometry: geom,
		TOC:      make([]model.TOCEntry, 0, n),
		Pages:    make([]*model.Page, 0, n+1),
	}

	for i, draft := range drafts {
		doc.TOC = append(doc.TOC, model.TOCEntry{
			Title: draft.Card.Title,
			Page:  PageNumber(i),
		})
	}

	doc.Pages = append(doc.Pages, tocPage(title, doc.TOC, geom))

	for i, draft := range drafts {
		card := draft.Card
		nav := model.NavigationBar{
			TOC: TOCPageNumber,
		}
		if i > 0 {
			nav.Prev = PageNumber(i - 1)
		}
		if i < n-1 {
			nav.Next = PageNumber(i + 1)
		}

		page := &model.Page{
			Number: PageNumber(i),
			Card:   &card,
			Nav:    &nav,
			Blocks: finalizeBlocks(draft.Blocks, nav, PageNumber(i), n+1),
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc
}

// finalizeBlocks copies the draft block sequence, swapping the navigation
// placeholder for a block carrying the resolved targets. Draft blocks are
// not mutated; each page owns its own block slice.
func finalizeBlocks(blocks []model.Block, nav model.NavigationBar, pageNumber, pageCount int) []model.Block {
	out := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		if placeholder, ok := b.(*model.NavBlock); ok {
			out = append(out, &model.NavBlock{
				Prev:       nav.Prev,
				Next:       nav.Next,
				TOC:        nav.TOC,
				PageNumber: pageNumber,
				PageCount:  pageCount,
				BBox:       placeholder.BBox,
			})
			continue
		}
		out = append(out, b)
	}
	return out
}

// tocPage lays out page 1: the document title and one row per card. Rows
// that would run past the bottom margin are dropped from the visible list;
// numbering of the remaining pages is unaffected.
func tocPage(title string, entries []model.TOCEntry, geom model.PageGeometry) *model.Page {
	heading := title
	if heading == "" {
		heading = "Contents"
	}

	width := geom.ContentWidth()
	headingBlock := &model.HeadingBlock{
		Text:     heading,
		Dir:      text.DetectDirection(heading),
		FontSize: geom.TitleFontSize,
		BBox: model.BBox{
			X:      geom.Margin,
			Y:      geom.Margin,
			Width:  width,
			Height: geom.TitleFontSize * tocHeadingLeading,
		},
	}

	page := &model.Page{
		Number: TOCPageNumber,
		Blocks: []model.Block{headingBlock},
	}

	rowHeight := geom.BodyFontSize * tocRowFactor
	y := headingBlock.BBox.Bottom() + tocHeadingGap
	limit := geom.Height - geom.Margin

	for i, entry := range entries {
		if y+rowHeight > limit {
			break
		}
		page.Blocks = append(page.Blocks, &model.TOCEntryBlock{
			Ordinal: i + 1,
			Title:   entry.Title,
			Page:    entry.Page,
			Dir:     text.DetectDirection(entry.Title),
			BBox: model.BBox{
				X:      geom.Margin,
				Y:      y,
				Width:  width,
				Height: rowHeight,
			},
		})
		y += rowHeight
	}

	return page
}
