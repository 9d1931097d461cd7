package layout

import (
	"strings"

	"github.com/tsawler/carousel/model"
	"github.com/tsawler/carousel/text"
)

// TruncationMarker is appended to a page whose card content exceeds the
// available height. It must stay visible so a cut page is never mistaken
// for a complete one.
const TruncationMarker = "[ … content truncated ]"

// Spacing constants, in points.
const (
	headingLeading = 1.3  // title line height factor
	bodyLeading    = 1.45 // body line height factor
	codeLeading    = 1.3  // code line height factor

	underlineDrop = 5.0  // distance from title baseline box to its rule
	headingGap    = 14.0 // gap between title rule and first paragraph
	paragraphGap  = 6.0  // gap between paragraphs
	codeGap       = 12.0 // gap before a code block
	codePadding   = 8.0  // inset between code box edge and code text
)

// Measurer reports rendered text widths. The writer package provides an
// implementation backed by the PDF font metrics; tests use fixed-width
// fakes.
type Measurer interface {
	// Width returns the width in points of s rendered at size points,
	// using the monospaced code face when mono is true and the body face
	// otherwise.
	Width(s string, size float64, mono bool) float64
}

// Engine lays out cards within a fixed page geometry.
type Engine struct {
	geom model.PageGeometry
	m    Measurer
}

// NewEngine creates a layout engine for the given geometry and measurer.
func NewEngine(geom model.PageGeometry, m Measurer) *Engine {
	return &Engine{geom: geom, m: m}
}

// LayoutCard flows one card onto one draft page. The emitted block order is
// always: heading, paragraphs, optional code, navigation placeholder. The
// placeholder NavBlock has no targets yet; the resolver fills them in.
func (e *Engine) LayoutCard(card model.Card) model.DraftPage {
	g := e.geom
	width := g.ContentWidth()
	limit := g.BodyLimit()
	bodyLineH := g.BodyFontSize * bodyLeading

	draft := model.DraftPage{Card: card}

	heading := &model.HeadingBlock{
		Text:     card.Title,
		Dir:      text.DetectDirection(card.Title),
		FontSize: g.TitleFontSize,
		BBox: model.BBox{
			X:      g.Margin,
			Y:      g.Margin,
			Width:  width,
			Height: g.TitleFontSize*headingLeading + underlineDrop,
		},
	}
	draft.Blocks = append(draft.Blocks, heading)
	y := heading.BBox.Bottom() + headingGap

	for _, para := range card.Body {
		lines := e.wrap(para, g.BodyFontSize, width)
		if len(lines) == 0 {
			continue
		}

		fit := linesThatFit(limit-y, bodyLineH)
		if fit < len(lines) {
			// Re-fit with room for the marker line below the cut.
			fit = linesThatFit(limit-y-bodyLineH-paragraphGap, bodyLineH)
			lines = lines[:fit]
			draft.Truncated = true
		}
		if len(lines) > 0 {
			block := &model.ParagraphBlock{
				Lines:      lines,
				Dir:        text.DetectDirection(para),
				FontSize:   g.BodyFontSize,
				LineHeight: bodyLineH,
				BBox: model.BBox{
					X:      g.Margin,
					Y:      y,
					Width:  width,
					Height: bodyLineH * float64(len(lines)),
				},
			}
			draft.Blocks = append(draft.Blocks, block)
			y = block.BBox.Bottom() + paragraphGap
		}
		if draft.Truncated {
			break
		}
	}

	if card.HasCode() && !draft.Truncated {
		block, truncated := e.layoutCode(card.Code, y, limit, bodyLineH+codeGap)
		if block != nil {
			draft.Blocks = append(draft.Blocks, block)
			y = block.BBox.Bottom() + codeGap
		}
		if truncated {
			draft.Truncated = true
		}
	}

	if draft.Truncated {
		if y+bodyLineH > limit {
			y = limit - bodyLineH
		}
		marker := &model.ParagraphBlock{
			Lines:      []string{TruncationMarker},
			Dir:        text.LTR,
			FontSize:   g.BodyFontSize,
			LineHeight: bodyLineH,
			BBox: model.BBox{
				X:      g.Margin,
				Y:      y,
				Width:  width,
				Height: bodyLineH,
			},
		}
		draft.Blocks = append(draft.Blocks, marker)
	}

	draft.Blocks = append(draft.Blocks, &model.NavBlock{
		BBox: model.BBox{
			X:      g.Margin,
			Y:      g.Height - g.Margin - g.NavHeight,
			Width:  width,
			Height: g.NavHeight,
		},
	})

	return draft
}

// layoutCode places the card's code in a padded box. Code lines keep their
// source whitespace and line breaks exactly and are never re-wrapped; lines
// that do not fit vertically are cut, which reports truncation.
func (e *Engine) layoutCode(code string, y, limit, markerReserve float64) (*model.CodeBlock, bool) {
	g := e.geom
	y += codeGap
	lines := strings.Split(code, "\n")
	codeLineH := g.CodeFontSize * codeLeading

	fit := linesThatFit(limit-y-2*codePadding, codeLineH)
	if fit <= 0 {
		return nil, true
	}

	truncated := false
	if fit < len(lines) {
		// Make room below the box for the marker line.
		fit = linesThatFit(limit-y-2*codePadding-markerReserve, codeLineH)
		if fit <= 0 {
			return nil, true
		}
		lines = lines[:fit]
		truncated = true
	}

	return &model.CodeBlock{
		Lines:      lines,
		FontSize:   g.CodeFontSize,
		LineHeight: codeLineH,
		BBox: model.BBox{
			X:      g.Margin,
			Y:      y,
			Width:  g.ContentWidth(),
			Height: codeLineH*float64(len(lines)) + 2*codePadding,
		},
	}, truncated
}

// linesThatFit returns how many lines of the given height fit in the
// available vertical space.
func linesThatFit(available, lineHeight float64) int {
	if available <= 0 || lineHeight <= 0 {
		return 0
	}
	return int(available / lineHeight)
}

// wrap breaks a paragraph into lines no wider than maxWidth, measuring with
// the body face. Words wider than a whole line are hard-broken on rune
// boundaries so no line ever overflows the content width.
func (e *Engine) wrap(s string, size, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if e.m.Width(candidate, size, false) <= maxWidth {
			current = candidate
			continue
		}
		flush()

		for e.m.Width(word, size, false) > maxWidth {
			prefix, rest := e.splitToWidth(word, size, maxWidth)
			if prefix == "" {
				break // width narrower than a single rune
			}
			lines = append(lines, prefix)
			word = rest
		}
		current = word
	}
	flush()

	return lines
}

// splitToWidth cuts the longest rune prefix of word that fits maxWidth.
func (e *Engine) splitToWidth(word string, size, maxWidth float64) (prefix, rest string) {
	runes := []rune(word)
	n := len(runes)
	for n > 1 && e.m.Width(string(runes[:n]), size, false) > maxWidth {
		n--
	}
	if n >= len(runes) {
		return word, ""
	}
	if n == 1 && e.m.Width(string(runes[:1]), size, false) > maxWidth {
		return string(runes[:1]), string(runes[1:])
	}
	return string(runes[:n]), string(runes[n:])
}
