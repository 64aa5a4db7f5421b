package dialect

// RoundTripReport is the outcome of translating text one way and back.
//
// Round trips are not expected to be stable: locale-exclusive terms have no
// way back and honorific conventions are asymmetric. The report names the
// words that did not survive.
type RoundTripReport struct {
	Input   string
	Forward Result
	Back    Result

	// Lost contains words of the input missing from the returned text.
	Lost []string

	// Gained contains words of the returned text missing from the input.
	Gained []string
}

// Stable reports whether the round trip reproduced the input exactly.
func (r *RoundTripReport) Stable() bool {
	return r.Back.Text == r.Input
}

// RoundTrip translates text in dir, translates the result back, and compares
// the words of both ends.
func (t *Translator) RoundTrip(text string, dir Direction) *RoundTripReport {
	forward := t.Translate(text, dir)
	back := t.Translate(forward.Text, dir.Reverse())

	lost, gained := diffWords(words(text), words(back.Text))
	return &RoundTripReport{
		Input:   text,
		Forward: forward,
		Back:    back,
		Lost:    lost,
		Gained:  gained,
	}
}

// words returns the word tokens of s, without separators.
func words(s string) []string {
	_, cased := Tokenize(s)
	out := make([]string, 0, len(cased))
	for _, tok := range cased {
		if isSeparator(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// diffWords compares two word lists as multisets. Results keep the order of
// first appearance.
func diffWords(before, after []string) (removed, added []string) {
	count := func(ws []string) map[string]int {
		m := make(map[string]int, len(ws))
		for _, w := range ws {
			m[w]++
		}
		return m
	}
	beforeCount, afterCount := count(before), count(after)

	removed, added = []string{}, []string{}
	for _, w := range before {
		if afterCount[w] > 0 {
			afterCount[w]--
			continue
		}
		removed = append(removed, w)
	}
	for _, w := range after {
		if beforeCount[w] > 0 {
			beforeCount[w]--
			continue
		}
		added = append(added, w)
	}
	return removed, added
}
