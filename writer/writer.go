package writer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/carousel/model"
	"github.com/tsawler/carousel/text"
)

var (
	// ErrCreateOutput wraps failures to create the output file or its
	// parent directories.
	ErrCreateOutput = errors.New("cannot create output file")

	// ErrWriteOutput wraps failures while writing or renaming the output.
	ErrWriteOutput = errors.New("cannot write output file")
)

type rgb struct{ r, g, b int }

var (
	headingColor = rgb{44, 62, 80}
	ruleColor    = rgb{231, 76, 60}
	bodyColor    = rgb{51, 51, 51}
	navColor     = rgb{0, 102, 204}
	mutedColor   = rgb{128, 128, 128}
	codeColor    = rgb{40, 40, 40}
	codeFill     = rgb{247, 247, 247}
	codeBorder   = rgb{204, 204, 204}
)

const (
	unicodeFontName = "unicode"
	codeFontName    = "Courier"

	navPad      = 6.0 // vertical inset inside the navigation region
	codePadding = 8.0 // matches the layout engine's code box inset
	leaderGap   = 4.0 // space between TOC text and the dotted leader

	prevLabel  = "« Previous"
	nextLabel  = "Next »"
	indexLabel = "Index"
)

// Options configures PDF serialization.
type Options struct {
	// FontPaths lists candidate TrueType files for body text; the first
	// readable one is embedded as a Unicode font. When none resolves, the
	// writer falls back to the built-in Helvetica with CP1252 translation.
	FontPaths []string

	// HighlightStyle names the chroma style used for code colouring.
	// Empty selects a default.
	HighlightStyle string
}

// Writer renders one resolved document to PDF. A Writer wraps a single
// underlying PDF instance and is good for exactly one WriteDocument call;
// create a fresh Writer per document. Writers are not safe for concurrent
// use.
type Writer struct {
	pdf      *gofpdf.Fpdf
	geom     model.PageGeometry
	bodyFont string
	utf8     bool
	tr       func(string) string
	hl       *highlighter
}

// New creates a writer for documents using the given page geometry.
func New(geom model.PageGeometry, opts Options) *Writer {
	w := &Writer{
		pdf:  newPDF(geom),
		geom: geom,
		hl:   newHighlighter(opts.HighlightStyle),
	}
	w.tr = w.pdf.UnicodeTranslatorFromDescriptor("")

	if !w.setupFonts(opts.FontPaths) || w.pdf.Err() {
		// A bad candidate leaves the instance's error state sticky, so the
		// core-font fallback needs a fresh one.
		w.pdf = newPDF(geom)
		w.tr = w.pdf.UnicodeTranslatorFromDescriptor("")
		w.bodyFont = "Helvetica"
		w.utf8 = false
	}
	return w
}

func newPDF(geom model.PageGeometry) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geom.Width, Ht: geom.Height},
	})
	pdf.SetMargins(geom.Margin, geom.Margin, geom.Margin)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// setupFonts embeds the first readable candidate as a Unicode face for body
// text and headings. Candidates are loaded as bytes because the PDF library
// resolves font file names against its own font directory, not the process
// working directory. Code always renders in the built-in Courier so column
// alignment survives regardless of which body font resolved.
func (w *Writer) setupFonts(candidates []string) bool {
	if candidates == nil {
		candidates = DefaultFontPaths()
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		w.pdf.AddUTF8FontFromBytes(unicodeFontName, "", data)
		w.pdf.AddUTF8FontFromBytes(unicodeFontName, "B", data)
		if w.pdf.Err() {
			return false
		}
		w.bodyFont = unicodeFontName
		w.utf8 = true
		return true
	}
	w.bodyFont = "Helvetica"
	w.utf8 = false
	return true
}

// Width reports the rendered width of s at the given size, in points. It
// satisfies the layout engine's Measurer interface with the same metrics the
// final render uses.
func (w *Writer) Width(s string, size float64, mono bool) float64 {
	if mono {
		w.pdf.SetFont(codeFontName, "", size)
		return w.pdf.GetStringWidth(w.tr(s))
	}
	w.pdf.SetFont(w.bodyFont, "", size)
	return w.pdf.GetStringWidth(w.enc(s))
}

// enc prepares body text for the current font: a pass-through for embedded
// Unicode fonts, CP1252 translation for the core-font fallback.
func (w *Writer) enc(s string) string {
	if w.utf8 {
		return s
	}
	return w.tr(s)
}

// WriteDocument renders the document and writes it to dest, creating parent
// directories as needed. The file is written to a temporary sibling and
// renamed into place, so a failed write never leaves a partial PDF at dest.
// It returns the number of bytes written.
func (w *Writer) WriteDocument(doc *model.Document, dest string) (int64, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return 0, fmt.Errorf("%w: document has no pages", ErrWriteOutput)
	}

	title := doc.Title
	if title == "" {
		title = "Card Document"
	}
	w.pdf.SetTitle(title, true)
	w.pdf.SetCreator("carousel", true)

	// One named link target per page, so navigation and TOC rows can point
	// at pages drawn later in the pass.
	links := make([]int, doc.PageCount()+1)
	for n := 1; n <= doc.PageCount(); n++ {
		links[n] = w.pdf.AddLink()
	}

	for _, page := range doc.Pages {
		w.pdf.AddPage()
		w.pdf.SetLink(links[page.Number], 0, -1)
		if page.Card != nil {
			w.pdf.Bookmark(page.Card.Title, 0, -1)
		} else {
			w.pdf.Bookmark(title, 0, -1)
		}
		for _, b := range page.Blocks {
			w.drawBlock(b, links)
		}
	}

	if err := w.pdf.Error(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return writeAtomic(dest, buf.Bytes())
}

func (w *Writer) drawBlock(b model.Block, links []int) {
	switch blk := b.(type) {
	case *model.HeadingBlock:
		w.drawHeading(blk)
	case *model.ParagraphBlock:
		w.drawParagraph(blk)
	case *model.CodeBlock:
		w.drawCode(blk)
	case *model.NavBlock:
		w.drawNav(blk, links)
	case *model.TOCEntryBlock:
		w.drawTOCEntry(blk, links)
	}
}

func (w *Writer) drawHeading(h *model.HeadingBlock) {
	w.setTextColor(headingColor)
	baseline := h.BBox.Y + h.FontSize
	w.drawText(h.Text, h.FontSize, "B", h.Dir, h.BBox, baseline)

	w.setDrawColor(ruleColor)
	w.pdf.SetLineWidth(1.5)
	ruleY := h.BBox.Bottom() - 1
	w.pdf.Line(h.BBox.X, ruleY, h.BBox.Right(), ruleY)
}

func (w *Writer) drawParagraph(p *model.ParagraphBlock) {
	w.setTextColor(bodyColor)
	for i, line := range p.Lines {
		baseline := p.BBox.Y + p.LineHeight*float64(i) + p.FontSize
		w.drawText(line, p.FontSize, "", p.Dir, p.BBox, baseline)
	}
}

func (w *Writer) drawCode(c *model.CodeBlock) {
	w.setFillColor(codeFill)
	w.setDrawColor(codeBorder)
	w.pdf.SetLineWidth(0.5)
	w.pdf.Rect(c.BBox.X, c.BBox.Y, c.BBox.Width, c.BBox.Height, "FD")

	// Code lines are verbatim; anything wider than the box is clipped, not
	// re-wrapped.
	w.pdf.ClipRect(c.BBox.X, c.BBox.Y, c.BBox.Width, c.BBox.Height, false)
	defer w.pdf.ClipEnd()

	spans := w.hl.lines(c.Text())
	for i := range c.Lines {
		baseline := c.BBox.Y + codePadding + c.LineHeight*float64(i) + c.FontSize
		x := c.BBox.X + codePadding
		if i >= len(spans) {
			break
		}
		if len(spans[i]) == 0 {
			continue
		}
		for _, sp := range spans[i] {
			style := ""
			if sp.bold {
				style = "B"
			}
			w.pdf.SetFont(codeFontName, style, c.FontSize)
			if sp.colored {
				w.pdf.SetTextColor(int(sp.r), int(sp.g), int(sp.b))
			} else {
				w.setTextColor(codeColor)
			}
			s := w.tr(sp.text)
			w.pdf.Text(x, baseline, s)
			x += w.pdf.GetStringWidth(s)
		}
	}
}

// drawNav renders the footer: a separator rule, a centered page indicator,
// and up to three clickable controls. Absent targets (zero) draw nothing,
// so the first page has no Previous control and the last no Next.
func (w *Writer) drawNav(n *model.NavBlock, links []int) {
	g := w.geom

	w.setDrawColor(codeBorder)
	w.pdf.SetLineWidth(0.5)
	w.pdf.Line(n.BBox.X, n.BBox.Y, n.BBox.Right(), n.BBox.Y)

	w.pdf.SetFont(w.bodyFont, "", g.NavFontSize)

	if n.PageCount > 0 {
		w.setTextColor(mutedColor)
		indicator := fmt.Sprintf("Page %d of %d", n.PageNumber, n.PageCount)
		s := w.enc(indicator)
		x := n.BBox.X + (n.BBox.Width-w.pdf.GetStringWidth(s))/2
		w.pdf.Text(x, n.BBox.Y+navPad+g.NavFontSize, s)
	}

	baseline := n.BBox.Bottom() - navPad
	w.setTextColor(navColor)

	if n.Prev > 0 {
		w.drawNavControl(prevLabel, n.BBox.X, baseline, links[n.Prev])
	}
	if n.TOC > 0 && n.TOC < len(links) {
		s := w.enc(indexLabel)
		x := n.BBox.X + (n.BBox.Width-w.pdf.GetStringWidth(s))/2
		w.drawNavControl(indexLabel, x, baseline, links[n.TOC])
	}
	if n.Next > 0 {
		s := w.enc(nextLabel)
		x := n.BBox.Right() - w.pdf.GetStringWidth(s)
		w.drawNavControl(nextLabel, x, baseline, links[n.Next])
	}
}

// drawNavControl draws one control at x and overlays its clickable region.
func (w *Writer) drawNavControl(label string, x, baseline float64, link int) {
	g := w.geom
	s := w.enc(label)
	w.pdf.Text(x, baseline, s)
	width := w.pdf.GetStringWidth(s)
	w.pdf.Link(x-2, baseline-g.NavFontSize-2, width+4, g.NavFontSize+6, link)
}

// drawTOCEntry renders one contents row: ordinal and title on one edge, the
// page number on the other, joined by a dotted leader. The whole row is
// clickable. RTL titles mirror the row.
func (w *Writer) drawTOCEntry(e *model.TOCEntryBlock, links []int) {
	g := w.geom
	size := g.BodyFontSize
	baseline := e.BBox.Y + (e.BBox.Height+size)/2

	pageLabel := w.enc(fmt.Sprintf("%d", e.Page))
	w.pdf.SetFont(w.bodyFont, "", size)
	pageWidth := w.pdf.GetStringWidth(pageLabel)

	titleText := fmt.Sprintf("%d. %s", e.Ordinal, e.Title)
	maxTitle := e.BBox.Width - pageWidth - 4*leaderGap
	titleText = w.fitText(titleText, size, maxTitle)
	titleWidth := w.Width(titleText, size, false)

	var titleX, pageX, dotFrom, dotTo float64
	if e.Dir == text.RTL {
		titleX = e.BBox.Right() - titleWidth
		pageX = e.BBox.X
		dotFrom = pageX + pageWidth + leaderGap
		dotTo = titleX - leaderGap
	} else {
		titleX = e.BBox.X
		pageX = e.BBox.Right() - pageWidth
		dotFrom = titleX + titleWidth + leaderGap
		dotTo = pageX - leaderGap
	}

	w.setTextColor(bodyColor)
	titleBox := e.BBox
	titleBox.Width = titleWidth
	titleBox.X = titleX
	w.drawText(titleText, size, "", e.Dir, titleBox, baseline)

	w.setTextColor(mutedColor)
	w.pdf.SetFont(w.bodyFont, "", size)
	w.pdf.Text(pageX, baseline, pageLabel)

	if dotTo > dotFrom {
		w.setDrawColor(mutedColor)
		w.pdf.SetLineWidth(0.5)
		w.pdf.SetDashPattern([]float64{1, 3}, 0)
		dotY := baseline - size*0.25
		w.pdf.Line(dotFrom, dotY, dotTo, dotY)
		w.pdf.SetDashPattern([]float64{}, 0)
	}

	if e.Page > 0 && e.Page < len(links) {
		w.pdf.Link(e.BBox.X, e.BBox.Y, e.BBox.Width, e.BBox.Height, links[e.Page])
	}
}

// drawText places one line of body-face text. LTR text starts at the box's
// left edge; RTL text ends at its right edge. With an embedded Unicode font
// the PDF library also flips the glyph run for RTL, matching the reading
// order.
func (w *Writer) drawText(s string, size float64, style string, dir text.Direction, box model.BBox, baseline float64) {
	w.pdf.SetFont(w.bodyFont, style, size)
	if dir == text.RTL {
		if w.utf8 {
			w.pdf.RTL()
			w.pdf.Text(box.Right(), baseline, s)
			w.pdf.LTR()
			return
		}
		t := w.tr(s)
		w.pdf.Text(box.Right()-w.pdf.GetStringWidth(t), baseline, t)
		return
	}
	w.pdf.Text(box.X, baseline, w.enc(s))
}

// fitText trims s on rune boundaries until it fits maxWidth, appending an
// ellipsis when anything was cut.
func (w *Writer) fitText(s string, size, maxWidth float64) string {
	if w.Width(s, size, false) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		if w.Width(string(runes)+"…", size, false) <= maxWidth {
			break
		}
	}
	return string(runes) + "…"
}

func (w *Writer) setTextColor(c rgb) { w.pdf.SetTextColor(c.r, c.g, c.b) }
func (w *Writer) setDrawColor(c rgb) { w.pdf.SetDrawColor(c.r, c.g, c.b) }
func (w *Writer) setFillColor(c rgb) { w.pdf.SetFillColor(c.r, c.g, c.b) }

// writeAtomic writes data to dest via a temporary file in the same
// directory, creating parent directories first.
func writeAtomic(dest string, data []byte) (int64, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return int64(len(data)), nil
}
