package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ZaguanLabs/dialect"
)

// HTMLProcessor extracts and applies translations to HTML content.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: dialect.IgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// parsedHTML holds the parsed document and the text node behind each TextNode.
type parsedHTML struct {
	doc   *goquery.Document
	nodes map[string]*html.Node
}

// skip reports whether an element and its subtree stay untranslated.
func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-translate" {
			return true
		}
		if attr.Key == "translate" && strings.EqualFold(attr.Val, "no") {
			return true
		}
	}
	return false
}

// Extract parses HTML and returns one node per non-blank text node, in
// document order.
func (p *HTMLProcessor) Extract(content string) (interface{}, []TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &dialect.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []TextNode
	byID := make(map[string]*html.Node)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				id := fmt.Sprintf("node-%d", len(nodes))
				node := TextNode{
					ID:       id,
					Text:     trimmed,
					Hash:     dialect.HashText(trimmed),
					NodeType: "html_text",
					Metadata: map[string]string{},
				}
				if n.Parent != nil {
					node.Metadata["parent_tag"] = n.Parent.Data
				}
				nodes = append(nodes, node)
				byID[id] = n
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return &parsedHTML{doc: doc, nodes: byID}, nodes, nil
}

// Apply writes translations back into the document and renders it.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &dialect.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	for _, node := range nodes {
		n, ok := ph.nodes[node.ID]
		if !ok {
			continue
		}
		if translated, ok := translations[node.Hash]; ok {
			n.Data = preserveWhitespace(n.Data, translated)
		}
	}

	out, err := ph.doc.Html()
	if err != nil {
		return "", &dialect.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

var _ ContentProcessor = (*HTMLProcessor)(nil)
