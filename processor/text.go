package processor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZaguanLabs/dialect"
)

// TextProcessor translates plain text line by line. Line endings and the
// white space around each line are kept.
type TextProcessor struct{}

// NewTextProcessor creates a plain text processor.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

type parsedText struct {
	lines []string // each line including its terminator
}

// Extract returns one node per non-blank line.
func (p *TextProcessor) Extract(content string) (interface{}, []TextNode, error) {
	lines := strings.SplitAfter(content, "\n")

	var nodes []TextNode
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nodes = append(nodes, TextNode{
			ID:       fmt.Sprintf("line-%d", i+1),
			Text:     trimmed,
			Hash:     dialect.HashText(trimmed),
			NodeType: "text_line",
			Metadata: map[string]string{"line": strconv.Itoa(i + 1)},
		})
	}

	return &parsedText{lines: lines}, nodes, nil
}

// Apply replaces each translated line and joins the lines again.
func (p *TextProcessor) Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error) {
	pt, ok := parsed.(*parsedText)
	if !ok {
		return "", &dialect.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "text",
		}
	}

	lines := make([]string, len(pt.lines))
	copy(lines, pt.lines)

	for _, node := range nodes {
		n, err := strconv.Atoi(node.Metadata["line"])
		if err != nil || n < 1 || n > len(lines) {
			return "", &dialect.ProcessorError{
				Message:     fmt.Sprintf("node %s has no valid line number", node.ID),
				Cause:       err,
				ContentType: "text",
			}
		}
		if translated, ok := translations[node.Hash]; ok {
			lines[n-1] = preserveWhitespace(lines[n-1], translated)
		}
	}

	return strings.Join(lines, ""), nil
}

// ContentType returns "text".
func (p *TextProcessor) ContentType() string {
	return "text"
}

var _ ContentProcessor = (*TextProcessor)(nil)
