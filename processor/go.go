package processor

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"github.com/ZaguanLabs/dialect"
)

// GoProcessor translates the comments of Go source code and, optionally,
// its string literals.
type GoProcessor struct {
	translateComments bool
	translateStrings  bool
}

// GoProcessorOption configures the Go processor.
type GoProcessorOption func(*GoProcessor)

// WithComments enables/disables comment translation.
func WithComments(enabled bool) GoProcessorOption {
	return func(p *GoProcessor) {
		p.translateComments = enabled
	}
}

// WithStrings enables/disables string literal translation.
func WithStrings(enabled bool) GoProcessorOption {
	return func(p *GoProcessor) {
		p.translateStrings = enabled
	}
}

// NewGoProcessor creates a new Go source processor. Comments are translated
// by default, string literals are not.
func NewGoProcessor(opts ...GoProcessorOption) *GoProcessor {
	p := &GoProcessor{
		translateComments: true,
		translateStrings:  false,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parsedGo holds the parsed file and the AST node behind each TextNode.
type parsedGo struct {
	fset     *token.FileSet
	file     *ast.File
	comments map[string]*ast.Comment
	strings  map[string]*ast.BasicLit
}

// Extract parses Go source and returns its translatable comments and strings.
func (p *GoProcessor) Extract(content string) (interface{}, []TextNode, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", content, parser.ParseComments)
	if err != nil {
		return nil, nil, &dialect.ProcessorError{
			Message:     "failed to parse Go source",
			Cause:       err,
			ContentType: "go",
		}
	}

	pg := &parsedGo{
		fset:     fset,
		file:     file,
		comments: make(map[string]*ast.Comment),
		strings:  make(map[string]*ast.BasicLit),
	}
	var nodes []TextNode

	if p.translateComments {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				text := commentBody(c.Text)
				if strings.TrimSpace(text) == "" || isDirective(c.Text) {
					continue
				}
				trimmed := strings.TrimSpace(text)
				id := fmt.Sprintf("comment-%d", c.Pos())
				pg.comments[id] = c
				nodes = append(nodes, TextNode{
					ID:       id,
					Text:     trimmed,
					Hash:     dialect.HashText(trimmed),
					NodeType: "go_comment",
					Metadata: map[string]string{
						"line": strconv.Itoa(fset.Position(c.Pos()).Line),
					},
				})
			}
		}
	}

	if p.translateStrings {
		ast.Inspect(file, func(n ast.Node) bool {
			// Import paths are never prose.
			if _, ok := n.(*ast.ImportSpec); ok {
				return false
			}
			lit, ok := n.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				return true
			}

			text, err := strconv.Unquote(lit.Value)
			if err != nil || !isTranslatableString(text) {
				return true
			}

			id := fmt.Sprintf("string-%d", lit.Pos())
			pg.strings[id] = lit
			nodes = append(nodes, TextNode{
				ID:       id,
				Text:     text,
				Hash:     dialect.HashText(text),
				NodeType: "go_string",
				Metadata: map[string]string{
					"line":  strconv.Itoa(fset.Position(lit.Pos()).Line),
					"quote": lit.Value[:1],
				},
			})
			return true
		})
	}

	return pg, nodes, nil
}

// Apply writes translations into the AST and prints the file.
func (p *GoProcessor) Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error) {
	pg, ok := parsed.(*parsedGo)
	if !ok {
		return "", &dialect.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "go",
		}
	}

	for _, node := range nodes {
		translated, ok := translations[node.Hash]
		if !ok {
			continue
		}
		if c, ok := pg.comments[node.ID]; ok {
			c.Text = rewriteComment(c.Text, translated)
			continue
		}
		if lit, ok := pg.strings[node.ID]; ok {
			lit.Value = quoteLike(lit.Value, translated)
		}
	}

	var buf strings.Builder
	if err := printer.Fprint(&buf, pg.fset, pg.file); err != nil {
		return "", &dialect.ProcessorError{
			Message:     "failed to print Go source",
			Cause:       err,
			ContentType: "go",
		}
	}

	return buf.String(), nil
}

// ContentType returns "go".
func (p *GoProcessor) ContentType() string {
	return "go"
}

// commentBody strips the comment markers.
func commentBody(comment string) string {
	if strings.HasPrefix(comment, "//") {
		return comment[2:]
	}
	if strings.HasPrefix(comment, "/*") && strings.HasSuffix(comment, "*/") {
		return comment[2 : len(comment)-2]
	}
	return ""
}

// isDirective reports compiler and tool directives such as //go:embed.
func isDirective(comment string) bool {
	if !strings.HasPrefix(comment, "//") || len(comment) < 3 || comment[2] == ' ' {
		return false
	}
	body := comment[2:]
	return strings.HasPrefix(body, "go:") || strings.HasPrefix(body, "line ") ||
		strings.HasPrefix(body, "nolint") || strings.HasPrefix(body, "export ")
}

// rewriteComment replaces the text of a comment, keeping its markers and
// the white space around the text.
func rewriteComment(comment, translated string) string {
	if strings.HasPrefix(comment, "//") {
		return "//" + preserveWhitespace(comment[2:], translated)
	}
	return "/*" + preserveWhitespace(comment[2:len(comment)-2], translated) + "*/"
}

// quoteLike quotes s the way the literal original was quoted. Raw strings
// stay raw unless s contains a back quote.
func quoteLike(original, s string) string {
	if strings.HasPrefix(original, "`") && !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// isTranslatableString reports whether a string literal looks like prose.
func isTranslatableString(s string) bool {
	// Prose has at least two words.
	if !strings.Contains(strings.TrimSpace(s), " ") {
		return false
	}

	// Format-only strings such as "%s: %v".
	if strings.Trim(s, "%svdqwx:, ") == "" {
		return false
	}

	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

var _ ContentProcessor = (*GoProcessor)(nil)
