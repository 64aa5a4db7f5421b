package dialect

import "strings"

// reconcile restores original casing on untouched tokens and capitalizes
// substituted tokens whose original started with an upper-case letter.
// Locked tokens already carry their final casing.
func reconcile(q *sequence) {
	for i, low := range q.lower {
		if q.locked[i] {
			continue
		}
		src := q.source[i]
		switch {
		case low == strings.ToLower(src):
			q.cased[i] = src
		case startsUpper(src):
			q.cased[i] = Capitalize(low)
		default:
			q.cased[i] = low
		}
	}
}

// assemble builds the result from the reconciled sequence.
func assemble(q *sequence, terms []string) Result {
	tokens := make([]string, len(q.cased))
	copy(tokens, q.cased)
	if terms == nil {
		terms = []string{}
	}
	return Result{
		Text:   strings.Join(tokens, ""),
		Terms:  terms,
		Tokens: tokens,
	}
}
