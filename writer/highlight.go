package writer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultHighlightStyle = "friendly"

// span is a run of code with a single colour and weight.
type span struct {
	text    string
	r, g, b uint8
	colored bool
	bold    bool
}

// highlighter tokenizes code and maps tokens to colours from a chroma
// style. The language is detected from the content, since card markup
// carries no language hint.
type highlighter struct {
	style *chroma.Style
}

func newHighlighter(styleName string) *highlighter {
	if styleName == "" {
		styleName = defaultHighlightStyle
	}
	return &highlighter{style: styles.Get(styleName)}
}

// lines splits code into per-line colour spans. Token values never leak
// across line boundaries, so the result lines up one-to-one with the code's
// newline-separated lines. On tokenizer failure every line becomes a single
// uncoloured span.
func (h *highlighter) lines(code string) [][]span {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(code)
	}

	out := make([][]span, 0, strings.Count(code, "\n")+1)
	var current []span

	for _, tok := range it.Tokens() {
		entry := h.style.Get(tok.Type)
		sp := span{bold: entry.Bold == chroma.Yes}
		if entry.Colour.IsSet() {
			sp.colored = true
			sp.r = entry.Colour.Red()
			sp.g = entry.Colour.Green()
			sp.b = entry.Colour.Blue()
		}

		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, current)
				current = nil
			}
			if part == "" {
				continue
			}
			s := sp
			s.text = part
			current = append(current, s)
		}
	}
	out = append(out, current)

	return out
}

func plainLines(code string) [][]span {
	raw := strings.Split(code, "\n")
	out := make([][]span, len(raw))
	for i, line := range raw {
		if line != "" {
			out[i] = []span{{text: line}}
		}
	}
	return out
}
