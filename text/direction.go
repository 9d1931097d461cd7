package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of a run of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for text with no strong directional characters
	// (numbers, punctuation, whitespace).
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection returns the dominant direction of s based on the Unicode
// bidirectional classes of its characters. Strong left-to-right characters
// (class L) are weighed against strong right-to-left characters (classes R
// and AL); whichever count is higher wins. Text with no strong directional
// characters is Neutral.
func DetectDirection(s string) Direction {
	if s == "" {
		return Neutral
	}

	ltr, rtl := 0, 0
	for b := []byte(s); len(b) > 0; {
		props, size := bidi.Lookup(b)
		if size == 0 {
			// Invalid UTF-8 byte: contributes no direction, and the scan
			// must still advance.
			b = b[1:]
			continue
		}
		switch props.Class() {
		case bidi.L:
			ltr++
		case bidi.R, bidi.AL:
			rtl++
		}
		b = b[size:]
	}

	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// IsRTL reports whether the dominant direction of s is right-to-left.
func IsRTL(s string) bool {
	return DetectDirection(s) == RTL
}
