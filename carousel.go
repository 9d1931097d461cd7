// Package carousel converts HTML card documents into paginated PDFs.
//
// A card document is an HTML file whose content is organized as a sequence
// of "card" containers. Each card becomes exactly one PDF page, preceded by
// a table of contents page that links every card title to its page. Card
// pages carry a navigation footer with clickable Previous, Index, and Next
// controls.
//
// Basic usage:
//
//	result, warnings, err := carousel.FromFile("cards.html").Convert("cards.pdf")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", carousel.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := carousel.FromFile("cards.html").
//	    Title("Study Guide").
//	    HighlightStyle("monokai").
//	    Convert("guide.pdf")
//
// For more control over the intermediate stages, the htmldoc, layout,
// resolver, and writer packages are also available.
package carousel

import (
	"io"
)

// FromFile creates a Converter reading the card document from a file.
//
// Example:
//
//	result, warnings, err := carousel.FromFile("cards.html").Convert("cards.pdf")
func FromFile(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString creates a Converter reading the card document from a string of
// HTML markup.
//
// Example:
//
//	doc, _, err := carousel.FromString(markup).Document()
func FromString(markup string) *Converter {
	return &Converter{
		markup:    markup,
		hasMarkup: true,
		options:   defaultOptions(),
	}
}

// FromReader creates a Converter reading the card document from r. The
// reader is consumed by the first terminal operation; the caller keeps
// ownership of any underlying resource.
func FromReader(r io.Reader) *Converter {
	return &Converter{
		reader:  r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert wraps a terminal operation returning (T, []Warning, error),
// panicking on error and discarding warnings.
//
// Example:
//
//	doc := carousel.MustConvert(carousel.FromFile("cards.html").Document())
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
