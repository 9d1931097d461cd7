package carousel

import (
	"fmt"
	"strings"
)

// WarningType classifies a conversion warning.
type WarningType string

const (
	// WarningExtraction reports an irregularity in the source markup, such
	// as a card without a title. The card is still converted.
	WarningExtraction WarningType = "extraction"

	// WarningTruncation reports a card whose content did not fit on its
	// page. The page carries a visible truncation marker.
	WarningTruncation WarningType = "truncation"
)

// Warning describes a non-fatal issue encountered during conversion. The
// output is still produced; warnings indicate where it may differ from what
// the source intended.
type Warning struct {
	Type    WarningType
	Card    int // zero-based card index, -1 when not tied to one card
	Message string
}

func (w Warning) String() string {
	if w.Card < 0 {
		return fmt.Sprintf("[%s] %s", w.Type, w.Message)
	}
	return fmt.Sprintf("[%s] card %d: %s", w.Type, w.Card, w.Message)
}

// FormatWarnings renders warnings as a single semicolon-separated string,
// convenient for logging.
//
// Example:
//
//	log.Println("Warnings:", carousel.FormatWarnings(warnings))
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
