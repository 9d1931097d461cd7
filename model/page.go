package model

// DraftPage is the layout engine's output for one card: positioned content
// blocks, including a navigation placeholder, but no page number yet.
// Navigation targets and numbering are filled in by the resolver once the
// complete card sequence is known.
type DraftPage struct {
	Card      Card
	Blocks    []Block
	Truncated bool // content exceeded one page and was cut at the marker
}

// Page is one finalized unit of output. Card is nil for the table of
// contents page.
type Page struct {
	Number int
	Blocks []Block
	Card   *Card
	Nav    *NavigationBar // nil for the TOC page
}

// NavigationBar holds the resolved link targets for a card page. A zero
// Prev or Next means the control is absent.
type NavigationBar struct {
	Prev int
	Next int
	TOC  int
}

// TOCEntry pairs a card title with its resolved page number. Entries appear
// in card index order.
type TOCEntry struct {
	Title string
	Page  int
}

// Document is the fully resolved page sequence ready for serialization:
// the TOC page first, then one page per card in ascending page order.
type Document struct {
	Title    string
	Geometry PageGeometry
	TOC      []TOCEntry
	Pages    []*Page
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// CardPages returns the pages after the table of contents.
func (d *Document) CardPages() []*Page {
	if len(d.Pages) < 2 {
		return nil
	}
	return d.Pages[1:]
}

// Titles returns card titles in page order, a convenience for round-trip
// checks against the source document.
func (d *Document) Titles() []string {
	titles := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		if p.Card != nil {
			titles = append(titles, p.Card.Title)
		}
	}
	return titles
}
