package dialect

import "strings"

// substitute replaces every dictionary term found in q, in dictionary order,
// and appends each translation to terms.
//
// A term matches when it is a substring of the search text and each of its
// component tokens occurs somewhere in the sequence. The components are not
// required to be adjacent; a multi-word term is written over the span that
// starts at the first occurrence of its first component.
func substitute(q *sequence, dict *Dictionary, terms []string) []string {
	search := q.searchText()

	for _, e := range dict.entries {
		if e.Source == "" || !strings.Contains(search, e.Source) {
			continue
		}

		parts, _ := Tokenize(e.Source)
		if !allPresent(q, parts) {
			continue
		}

		i := q.indexOf(parts[0])
		if i < 0 {
			continue
		}

		if len(parts) == 1 {
			q.replace(i, e.Target, e.Target)
			terms = append(terms, e.Target)
			continue
		}

		n := len(parts)
		if i+n > q.len() || q.spanLocked(i, n) {
			continue
		}
		cased := e.Target
		if startsUpper(q.source[i]) {
			cased = Capitalize(cased)
		}
		q.collapse(i, n, e.Target, cased, false)
		terms = append(terms, e.Target)
	}

	return terms
}

// allPresent reports whether every part occurs among the unlocked tokens.
func allPresent(q *sequence, parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if q.indexOf(p) < 0 {
			return false
		}
	}
	return true
}
