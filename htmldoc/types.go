package htmldoc

import (
	"errors"
	"fmt"

	"github.com/tsawler/carousel/model"
)

// ErrEmptyDocument is returned when the markup contains no recognizable
// card containers. No pages can be produced from such a document.
var ErrEmptyDocument = errors.New("no card containers found in document")

// Note records a non-fatal irregularity found during extraction, such as a
// card without a title. Extraction always continues past a Note.
type Note struct {
	Card    int // zero-based card index
	Message string
}

func (n Note) String() string {
	return fmt.Sprintf("card %d: %s", n.Card, n.Message)
}

// Extraction is the result of parsing one document: the document title, the
// cards in source order, and any non-fatal notes collected along the way.
type Extraction struct {
	Title string // document-level title from <h1> or <title>, may be empty
	Cards []model.Card
	Notes []Note
}
