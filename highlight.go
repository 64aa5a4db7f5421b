package dialect

import (
	"strings"

	"golang.org/x/net/html"
)

// HighlightClass is the CSS class HighlightHTML puts on changed terms.
const HighlightClass = "highlight"

// Highlight wraps every substituted term of r in open and close. Each term
// marks one token: the first unmarked token equal to the capitalized term,
// or failing that the first one equal to the term as recorded.
func Highlight(r Result, open, close string) string {
	return highlight(r, open, close, func(s string) string { return s })
}

// HighlightHTML renders r as HTML with each substituted term wrapped in
// <span class='highlight'>. All other text is escaped.
func HighlightHTML(r Result) string {
	return highlight(r, "<span class='"+HighlightClass+"'>", "</span>", html.EscapeString)
}

func highlight(r Result, open, close string, escape func(string) string) string {
	marked := make([]bool, len(r.Tokens))

	find := func(term string) int {
		for i, tok := range r.Tokens {
			if tok == term && !marked[i] {
				return i
			}
		}
		return -1
	}

	for _, term := range r.Terms {
		i := find(Capitalize(term))
		if i < 0 {
			i = find(term)
		}
		if i >= 0 {
			marked[i] = true
		}
	}

	var b strings.Builder
	for i, tok := range r.Tokens {
		if marked[i] {
			b.WriteString(open)
			b.WriteString(escape(tok))
			b.WriteString(close)
			continue
		}
		b.WriteString(escape(tok))
	}
	return b.String()
}
