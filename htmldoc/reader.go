package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/carousel/model"
)

// Open reads and extracts cards from an HTML file.
func Open(filename string) (*Extraction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseString extracts cards from HTML markup held in a string.
func ParseString(markup string) (*Extraction, error) {
	return Parse(strings.NewReader(markup))
}

// Parse extracts cards from HTML markup. The HTML5 parsing algorithm
// recovers from unbalanced and malformed markup, so Parse fails only when
// the reader itself fails or when the document contains no card containers.
func Parse(r io.Reader) (*Extraction, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	ext := &Extraction{
		Title: documentTitle(doc),
	}

	containers := findCardContainers(doc)
	if len(containers) == 0 {
		return nil, ErrEmptyDocument
	}

	for i, container := range containers {
		card, notes := extractCard(container, i)
		ext.Cards = append(ext.Cards, card)
		ext.Notes = append(ext.Notes, notes...)
	}

	return ext, nil
}

// extractCard pulls the title, body paragraphs, and code text out of one
// card container. It never fails: missing pieces produce placeholders and
// Notes instead.
func extractCard(container *html.Node, index int) (model.Card, []Note) {
	var notes []Note

	// Nodes consumed by title or code extraction are excluded from the
	// body walk so their text is not duplicated.
	consumed := make(map[*html.Node]bool)

	title := ""
	if titleNode := findTitleNode(container); titleNode != nil {
		title = normalizeText(textContent(titleNode))
		consumed[titleNode] = true
	}
	if title == "" {
		title = fmt.Sprintf("Card %d", index+1)
		notes = append(notes, Note{Card: index, Message: "missing title, using placeholder"})
	}

	codeNodes := findCodeNodes(container)
	for _, n := range codeNodes {
		consumed[n] = true
	}
	code := ""
	if len(codeNodes) > 0 {
		code = trimCodeEdges(textContent(codeNodes[0]))
		if code == "" {
			notes = append(notes, Note{Card: index, Message: "empty code block dropped"})
		}
		if len(codeNodes) > 1 {
			notes = append(notes, Note{Card: index,
				Message: fmt.Sprintf("%d extra code blocks ignored", len(codeNodes)-1)})
		}
	}

	return model.Card{
		Title: title,
		Body:  bodyParagraphs(container, consumed),
		Code:  code,
		Index: index,
	}, notes
}

// findCardContainers returns card container elements in document order.
// Containers are not searched for nested cards.
func findCardContainers(root *html.Node) []*html.Node {
	var containers []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isCardContainer(n) {
			containers = append(containers, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return containers
}

// isCardContainer reports whether n is a card boundary marker: a block
// container carrying the "card" class. The "code-card" class is a distinct
// token and does not match.
func isCardContainer(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "div", "section", "article":
		return hasClass(n, "card")
	}
	return false
}

// findTitleNode locates the card's title element: the first h2 or h3, or
// failing that any element with the card-title class.
func findTitleNode(container *html.Node) *html.Node {
	if n := findFirst(container, func(n *html.Node) bool {
		return n.Type == html.ElementNode && (n.Data == "h2" || n.Data == "h3")
	}); n != nil {
		return n
	}
	return findFirst(container, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "card-title")
	})
}

// findCodeNodes returns the card's code-marker elements in document order:
// pre elements and containers with the code-card or code class. A match is
// not searched for nested matches, so a pre inside a code-card div is
// counted once.
func findCodeNodes(container *html.Node) []*html.Node {
	var nodes []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.Data == "pre" || hasClass(n, "code-card") || hasClass(n, "code") {
				nodes = append(nodes, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return nodes
}

// bodyParagraphs walks the card subtree collecting paragraph-level text,
// skipping consumed nodes (title, code) and non-content elements.
// Whitespace runs collapse to single spaces; block-level separators become
// paragraph breaks.
func bodyParagraphs(container *html.Node, consumed map[*html.Node]bool) []string {
	var paragraphs []string

	add := func(s string) {
		if s = normalizeText(s); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if consumed[n] {
			return
		}
		if n.Type == html.ElementNode {
			if shouldSkipElement(n.Data) {
				return
			}
			switch n.Data {
			case "h2", "h3", "h4", "h5", "h6":
				// Extra headings inside a card read as emphasized body text.
				add(textContent(n))
				return
			case "p", "li", "blockquote":
				add(textContent(n))
				return
			case "pre":
				return
			case "div":
				if !hasBlockChildren(n) {
					add(directText(n, consumed))
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return paragraphs
}

// documentTitle returns the first h1's text, or the head title when no h1
// exists.
func documentTitle(root *html.Node) string {
	if h1 := findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "h1"
	}); h1 != nil {
		if t := normalizeText(textContent(h1)); t != "" {
			return t
		}
	}
	if tn := findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "title"
	}); tn != nil {
		return normalizeText(textContent(tn))
	}
	return ""
}

// findFirst returns the first node in document order satisfying match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// hasClass reports whether the element's class attribute contains name as
// a whole token.
func hasClass(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if token == name {
				return true
			}
		}
	}
	return false
}

// hasBlockChildren reports whether the element directly contains
// block-level children.
func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "p", "ul", "ol", "table", "blockquote", "pre",
				"h1", "h2", "h3", "h4", "h5", "h6", "article", "section":
				return true
			}
		}
	}
	return false
}

// shouldSkipElement reports whether an element never contributes content.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// textContent extracts the raw text of a node and its descendants. Line
// break elements become newlines; whitespace inside text nodes is kept as
// written, so callers extracting code see it verbatim.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			if shouldSkipElement(n.Data) {
				return
			}
			if n.Data == "br" {
				b.WriteString("\n")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// directText extracts text of a node excluding consumed descendants.
func directText(n *html.Node, consumed map[*html.Node]bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if consumed[n] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && shouldSkipElement(n.Data) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// normalizeText collapses whitespace runs to single spaces and trims the
// ends.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimCodeEdges drops blank leading lines and trailing whitespace that come
// from markup formatting around <pre>, keeping interior whitespace exactly.
func trimCodeEdges(s string) string {
	s = strings.TrimLeft(s, "\n")
	return strings.TrimRight(s, " \t\n")
}
