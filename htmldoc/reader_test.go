package htmldoc

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `<!DOCTYPE html>
<html>
<head><title>Guide</title></head>
<body>
<h1>Agent Patterns</h1>
<div class="container">
  <div class="card">
    <h2>Reflection</h2>
    <div class="card-content">
      <p>The agent   reviews
         its own output.</p>
      <p>Then it revises.</p>
    </div>
    <div class="code-card"><pre>def reflect(x):
    return x  # keep indent</pre></div>
  </div>
  <div class="card">
    <h3>Tool Use</h3>
    <p>The agent calls tools.</p>
  </div>
</div>
</body>
</html>`

func TestParseBasic(t *testing.T) {
	ext, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if ext.Title != "Agent Patterns" {
		t.Errorf("Title = %q, want %q", ext.Title, "Agent Patterns")
	}
	if len(ext.Cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(ext.Cards))
	}

	first := ext.Cards[0]
	if first.Title != "Reflection" {
		t.Errorf("first title = %q", first.Title)
	}
	if first.Index != 0 {
		t.Errorf("first index = %d, want 0", first.Index)
	}
	if len(first.Body) != 2 {
		t.Fatalf("first body = %v, want 2 paragraphs", first.Body)
	}
	if first.Body[0] != "The agent reviews its own output." {
		t.Errorf("whitespace not normalized: %q", first.Body[0])
	}

	second := ext.Cards[1]
	if second.Title != "Tool Use" || second.Index != 1 {
		t.Errorf("second card = %+v", second)
	}
	if second.HasCode() {
		t.Error("second card should have no code")
	}
}

func TestParseCodeVerbatim(t *testing.T) {
	ext, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	want := "def reflect(x):\n    return x  # keep indent"
	if ext.Cards[0].Code != want {
		t.Errorf("code = %q, want %q", ext.Cards[0].Code, want)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := ParseString("<html><body><p>no cards here</p></body></html>")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("err = %v, want ErrEmptyDocument", err)
	}
}

func TestParseMissingTitle(t *testing.T) {
	ext, err := ParseString(`<div class="card"><p>body only</p></div>`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if ext.Cards[0].Title != "Card 1" {
		t.Errorf("placeholder title = %q, want %q", ext.Cards[0].Title, "Card 1")
	}
	if len(ext.Notes) == 0 {
		t.Error("expected a note for the missing title")
	}
}

func TestParseMultipleCodeBlocks(t *testing.T) {
	markup := `<div class="card">
		<h2>Two snippets</h2>
		<p>intro</p>
		<pre>first()</pre>
		<pre>second()</pre>
	</div>`

	ext, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	card := ext.Cards[0]
	if card.Code != "first()" {
		t.Errorf("code = %q, want only the first block", card.Code)
	}
	for _, p := range card.Body {
		if strings.Contains(p, "second()") {
			t.Errorf("second code block leaked into body: %q", p)
		}
	}
	found := false
	for _, n := range ext.Notes {
		if strings.Contains(n.Message, "extra code blocks") {
			found = true
		}
	}
	if !found {
		t.Error("expected a note about ignored code blocks")
	}
}

func TestParseMalformedMarkup(t *testing.T) {
	// Unclosed tags and stray closers; the HTML5 parser recovers.
	markup := `<div class="card"><h2>Broken</h2><p>still extracted</div></span>
		<div class="card"><h2>Next</h2>`

	ext, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString should tolerate malformed markup: %v", err)
	}
	if len(ext.Cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(ext.Cards))
	}
	if ext.Cards[0].Title != "Broken" {
		t.Errorf("title = %q", ext.Cards[0].Title)
	}
	if len(ext.Cards[0].Body) != 1 || ext.Cards[0].Body[0] != "still extracted" {
		t.Errorf("body = %v", ext.Cards[0].Body)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	// The HTML parser does not validate encoding; truncated multi-byte
	// sequences and stray continuation bytes flow into extracted text.
	markup := "<div class=\"card\"><h2>ab\xe4</h2><p>body \x80\xbf text</p></div>"

	ext, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString should tolerate invalid UTF-8: %v", err)
	}
	if len(ext.Cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(ext.Cards))
	}
	if !strings.HasPrefix(ext.Cards[0].Title, "ab") {
		t.Errorf("title = %q", ext.Cards[0].Title)
	}
	if len(ext.Cards[0].Body) != 1 {
		t.Errorf("body = %v", ext.Cards[0].Body)
	}
}

func TestParseOrderPreserved(t *testing.T) {
	var b strings.Builder
	titles := []string{"Zebra", "Apple", "Zebra", "Mango"}
	for _, title := range titles {
		b.WriteString(`<div class="card"><h2>` + title + `</h2></div>`)
	}

	ext, err := ParseString(b.String())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	// Source order, no sorting, no deduplication.
	if len(ext.Cards) != len(titles) {
		t.Fatalf("got %d cards, want %d", len(ext.Cards), len(titles))
	}
	for i, card := range ext.Cards {
		if card.Title != titles[i] {
			t.Errorf("card %d title = %q, want %q", i, card.Title, titles[i])
		}
		if card.Index != i {
			t.Errorf("card %d index = %d", i, card.Index)
		}
	}
}

func TestParseRTLContent(t *testing.T) {
	markup := `<div class="card"><h2>النمط التأملي</h2><p>يراجع الوكيل مخرجاته.</p></div>`

	ext, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if ext.Cards[0].Title != "النمط التأملي" {
		t.Errorf("RTL title mangled: %q", ext.Cards[0].Title)
	}
	if len(ext.Cards[0].Body) != 1 || ext.Cards[0].Body[0] != "يراجع الوكيل مخرجاته." {
		t.Errorf("RTL body mangled: %v", ext.Cards[0].Body)
	}
}

func TestParseSkipsScriptAndStyle(t *testing.T) {
	markup := `<div class="card"><h2>T</h2>
		<style>.card { color: red }</style>
		<script>var x = 1;</script>
		<p>real text</p></div>`

	ext, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(ext.Cards[0].Body) != 1 || ext.Cards[0].Body[0] != "real text" {
		t.Errorf("body = %v, want only the paragraph", ext.Cards[0].Body)
	}
}

func TestParseCodeCardClassNotACard(t *testing.T) {
	// A code-card div must not be treated as a card container.
	markup := `<div class="card"><h2>Only one</h2>
		<div class="code-card"><pre>snippet()</pre></div></div>`

	ext, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(ext.Cards) != 1 {
		t.Errorf("got %d cards, want 1", len(ext.Cards))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.html"); err == nil {
		t.Error("expected error for missing file")
	}
}
