package dialect

// Result is the outcome of translating one piece of text.
type Result struct {
	Text   string   `json:"text"`   // Translated text
	Terms  []string `json:"terms"`  // Substituted terms, in match order
	Tokens []string `json:"tokens"` // Output tokens; joining them yields Text
}

// Changed reports whether any term was substituted.
func (r Result) Changed() bool {
	return len(r.Terms) > 0
}

// TextNode represents a translatable unit of content.
type TextNode struct {
	ID       string            // Unique identifier within one document
	Text     string            // Original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	NodeType string            // Content type: "html_text", "text_line", "go_comment", etc.
	Metadata map[string]string // Additional info (parent tag, line number, etc.)
}

// ProcessedContent is the result of a document translation.
type ProcessedContent struct {
	Content      string   // Translated content
	Terms        []string // Substituted terms across all nodes, in node order
	ChangedNodes int      // Number of nodes whose text changed
	CachedCount  int      // Number of cache hits
	TotalNodes   int      // Total translatable nodes found
}

// IgnoredTags contains HTML tags whose content should not be translated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
