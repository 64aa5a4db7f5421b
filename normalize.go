package dialect

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// timeSeparators returns the separator used in the source and the target
// variant: 10:30 in American English, 10.30 in British English.
func timeSeparators(dir Direction) (from, to string) {
	if dir == ToAmerican {
		return ".", ":"
	}
	return ":", "."
}

// normalizeHonorifics splits text into white-space delimited words, swaps
// the ones found in titles, and tokenizes the rest. Swapped words become
// locked tokens and are recorded in terms immediately.
func normalizeHonorifics(text string, titles *Dictionary, terms []string) (*sequence, []string) {
	q := newSequence(len(text) / 3)

	start := 0
	inWord := false
	flush := func(end int) {
		if end <= start {
			return
		}
		chunk := text[start:end]
		if inWord {
			if title, ok := titles.Lookup(chunk); ok {
				q.appendLocked(chunk, title)
				terms = append(terms, title)
				return
			}
		}
		q.appendText(chunk)
	}

	for i, r := range text {
		word := !unicode.IsSpace(r)
		if i == 0 {
			inWord = word
			continue
		}
		if word != inWord {
			flush(i)
			start = i
			inWord = word
		}
	}
	flush(len(text))

	return q, terms
}

// normalizeTimes collapses <hour> <sep> <minute> windows into a single token
// written with the target separator.
func normalizeTimes(q *sequence, dir Direction, terms []string) []string {
	from, to := timeSeparators(dir)

	for i := 0; i+2 < q.len(); i++ {
		if q.lower[i+1] != from || q.spanLocked(i, 3) {
			continue
		}
		hour, minute := q.lower[i], q.lower[i+2]
		if !isHour(hour) || !isMinute(minute) {
			continue
		}
		tok := hour + to + minute
		q.collapse(i, 3, tok, tok, true)
		terms = append(terms, tok)
	}
	return terms
}

// isHour accepts one or two digits from 0 to 24.
func isHour(s string) bool {
	if utf8.RuneCountInString(s) > 2 || !allDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n <= 24
}

// isMinute accepts exactly two digits from 00 to 59.
func isMinute(s string) bool {
	if len(s) != 2 || !allDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n <= 59
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
