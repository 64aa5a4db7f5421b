package dialect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isBoundary reports whether r splits words. Boundary runes are kept as
// tokens of their own.
func isBoundary(r rune) bool {
	switch r {
	case ',', '.', ';', ':', '?':
		return true
	}
	return unicode.IsSpace(r)
}

// isPunctuation reports whether a token is a single punctuation boundary.
func isPunctuation(tok string) bool {
	switch tok {
	case ",", ".", ";", ":", "?":
		return true
	}
	return false
}

// isSeparator reports whether tok is a single boundary rune.
func isSeparator(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	return size == len(tok) && size > 0 && isBoundary(r)
}

// split breaks s into word and boundary tokens. Joining the tokens yields s.
func split(s string) []string {
	var tokens []string
	start := 0
	for i, r := range s {
		if !isBoundary(r) {
			continue
		}
		if i > start {
			tokens = append(tokens, s[start:i])
		}
		end := i + len(string(r))
		tokens = append(tokens, s[i:end])
		start = end
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Tokenize splits s into two index-aligned token sequences: a lower-cased one
// for matching and one with the original casing.
func Tokenize(s string) (lower, cased []string) {
	cased = split(s)
	if cased == nil {
		cased = []string{}
	}
	lower = make([]string, len(cased))
	for i, tok := range cased {
		lower[i] = strings.ToLower(tok)
	}
	return lower, cased
}

// sequence is the working state of one translation. All four slices are
// index-aligned and are only changed through the methods below.
type sequence struct {
	lower  []string // lower-cased tokens, used for matching
	cased  []string // output tokens
	source []string // original text each token stands for
	locked []bool   // produced by the normalizer; never matched again
}

func newSequence(capacity int) *sequence {
	return &sequence{
		lower:  make([]string, 0, capacity),
		cased:  make([]string, 0, capacity),
		source: make([]string, 0, capacity),
		locked: make([]bool, 0, capacity),
	}
}

// appendText tokenizes s and appends its tokens.
func (q *sequence) appendText(s string) {
	lower, cased := Tokenize(s)
	q.lower = append(q.lower, lower...)
	q.cased = append(q.cased, cased...)
	q.source = append(q.source, cased...)
	for range cased {
		q.locked = append(q.locked, false)
	}
}

// appendLocked appends a single already-translated token.
func (q *sequence) appendLocked(source, translated string) {
	q.lower = append(q.lower, strings.ToLower(translated))
	q.cased = append(q.cased, translated)
	q.source = append(q.source, source)
	q.locked = append(q.locked, true)
}

func (q *sequence) len() int {
	return len(q.lower)
}

// indexOf returns the first unlocked position holding tok, or -1.
func (q *sequence) indexOf(tok string) int {
	for i, t := range q.lower {
		if t == tok && !q.locked[i] {
			return i
		}
	}
	return -1
}

// replace sets the token at i in both sequences.
func (q *sequence) replace(i int, lower, cased string) {
	q.lower[i] = lower
	q.cased[i] = cased
}

// collapse replaces the n tokens starting at i with a single token. The
// source of the new token is the concatenated source of the span.
func (q *sequence) collapse(i, n int, lower, cased string, locked bool) {
	src := strings.Join(q.source[i:i+n], "")

	q.lower = append(q.lower[:i+1], q.lower[i+n:]...)
	q.cased = append(q.cased[:i+1], q.cased[i+n:]...)
	q.source = append(q.source[:i+1], q.source[i+n:]...)
	q.locked = append(q.locked[:i+1], q.locked[i+n:]...)

	q.lower[i] = lower
	q.cased[i] = cased
	q.source[i] = src
	q.locked[i] = locked
}

// spanLocked reports whether any token in [i, i+n) is locked.
func (q *sequence) spanLocked(i, n int) bool {
	for _, l := range q.locked[i : i+n] {
		if l {
			return true
		}
	}
	return false
}

// searchText returns the lower-cased text with punctuation tokens removed.
func (q *sequence) searchText() string {
	var b strings.Builder
	for _, tok := range q.lower {
		if isPunctuation(tok) {
			continue
		}
		b.WriteString(tok)
	}
	return b.String()
}
