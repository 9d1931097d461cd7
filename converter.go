package carousel

import (
	"fmt"
	"io"

	"github.com/tsawler/carousel/htmldoc"
	"github.com/tsawler/carousel/layout"
	"github.com/tsawler/carousel/model"
	"github.com/tsawler/carousel/resolver"
	"github.com/tsawler/carousel/writer"
)

// Result summarizes a completed conversion.
type Result struct {
	Pages      int    // total pages written, including the TOC page
	OutputPath string // where the PDF was written
	OutputSize int64  // size of the PDF in bytes
}

// Converter provides a fluent interface for converting one card document.
// Each configuration method returns a new Converter instance, making it
// safe to share a configured base across goroutines and to branch chains.
type Converter struct {
	// Source (exactly one is used)
	filename  string
	markup    string
	hasMarkup bool
	reader    io.Reader

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:  c.filename,
		markup:    c.markup,
		hasMarkup: c.hasMarkup,
		reader:    c.reader,
		options:   c.options.clone(),
		err:       c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Geometry sets the page geometry for every page of the output. The default
// is A4 portrait with 2 cm margins.
//
// Example:
//
//	result, _, err := carousel.FromFile("cards.html").
//	    Geometry(model.A4Geometry()).
//	    Convert("cards.pdf")
func (c *Converter) Geometry(g model.PageGeometry) *Converter {
	nc := c.clone()
	nc.options.geometry = g
	if !g.Valid() {
		nc.err = fmt.Errorf("invalid page geometry: %+v", g)
	}
	return nc
}

// Title overrides the document title. By default the title comes from the
// source document's <h1> heading, falling back to its <title> element.
func (c *Converter) Title(title string) *Converter {
	nc := c.clone()
	nc.options.title = title
	return nc
}

// FontPaths sets the candidate TrueType files for the embedded body font.
// The first readable candidate wins; when none resolves, output falls back
// to a built-in font with Latin-1 coverage only.
func (c *Converter) FontPaths(paths ...string) *Converter {
	nc := c.clone()
	nc.options.fontPaths = append([]string(nil), paths...)
	return nc
}

// HighlightStyle names the syntax highlighting style used for code blocks,
// e.g. "monokai" or "friendly".
func (c *Converter) HighlightStyle(style string) *Converter {
	nc := c.clone()
	nc.options.highlightStyle = style
	return nc
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Convert runs the full pipeline and writes the PDF to outputPath, creating
// parent directories as needed. This is a terminal operation.
//
// Returns a Result describing the output, any warnings encountered during
// processing, and an error if conversion failed. Warnings indicate
// non-fatal issues (a card without a title, truncated content) where
// conversion succeeded but output may be imperfect.
//
// Example:
//
//	result, warnings, err := carousel.FromFile("cards.html").Convert("cards.pdf")
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", carousel.FormatWarnings(warnings))
//	}
func (c *Converter) Convert(outputPath string) (Result, []Warning, error) {
	doc, pw, warnings, err := c.run()
	if err != nil {
		return Result{}, warnings, err
	}

	size, err := pw.WriteDocument(doc, outputPath)
	if err != nil {
		return Result{}, warnings, err
	}

	return Result{
		Pages:      doc.PageCount(),
		OutputPath: outputPath,
		OutputSize: size,
	}, warnings, nil
}

// Document runs extraction, layout, and resolution and returns the resolved
// document without writing a PDF. This is a terminal operation; it is
// useful for inspecting pagination, navigation targets, and the TOC.
//
// Example:
//
//	doc, warnings, err := carousel.FromFile("cards.html").Document()
//	for _, entry := range doc.TOC {
//	    fmt.Printf("%s -> page %d\n", entry.Title, entry.Page)
//	}
func (c *Converter) Document() (*model.Document, []Warning, error) {
	doc, _, warnings, err := c.run()
	return doc, warnings, err
}

// ============================================================================
// Internal pipeline
// ============================================================================

// run executes extract, layout, and resolve. The returned writer shares the
// font metrics the layout pass measured with, so a following WriteDocument
// renders exactly what was laid out.
func (c *Converter) run() (*model.Document, *writer.Writer, []Warning, error) {
	if c.err != nil {
		return nil, nil, nil, c.err
	}

	ext, err := c.extract()
	if err != nil {
		return nil, nil, nil, err
	}

	var warnings []Warning
	for _, note := range ext.Notes {
		warnings = append(warnings, Warning{
			Type:    WarningExtraction,
			Card:    note.Card,
			Message: note.Message,
		})
	}

	pw := writer.New(c.options.geometry, writer.Options{
		FontPaths:      c.options.fontPaths,
		HighlightStyle: c.options.highlightStyle,
	})

	engine := layout.NewEngine(c.options.geometry, pw)
	drafts := make([]model.DraftPage, 0, len(ext.Cards))
	for _, card := range ext.Cards {
		draft := engine.LayoutCard(card)
		if draft.Truncated {
			warnings = append(warnings, Warning{
				Type:    WarningTruncation,
				Card:    card.Index,
				Message: "content does not fit on one page and was truncated",
			})
		}
		drafts = append(drafts, draft)
	}

	title := ext.Title
	if c.options.title != "" {
		title = c.options.title
	}

	return resolver.Resolve(title, drafts, c.options.geometry), pw, warnings, nil
}

func (c *Converter) extract() (*htmldoc.Extraction, error) {
	switch {
	case c.reader != nil:
		return htmldoc.Parse(c.reader)
	case c.hasMarkup:
		return htmldoc.ParseString(c.markup)
	case c.filename != "":
		return htmldoc.Open(c.filename)
	default:
		return nil, fmt.Errorf("no input specified")
	}
}
