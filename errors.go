package carousel

import "github.com/tsawler/carousel/htmldoc"

// ErrEmptyDocument is returned when the source markup contains no card
// containers. Nothing is written in that case; errors.Is can match it on
// any terminal operation's error.
var ErrEmptyDocument = htmldoc.ErrEmptyDocument
