package dialect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entry is one row of a word table: a source term and its translation.
type Entry struct {
	Source string
	Target string
}

// Tables holds the four raw word tables a translator is built from.
// Spelling and Honorifics are keyed American → British.
type Tables struct {
	Spelling     []Entry // Spelling and vocabulary pairs
	Honorifics   []Entry // Title abbreviations, e.g. "mr." → "mr"
	AmericanOnly []Entry // Terms used only in American English
	BritishOnly  []Entry // Terms used only in British English
}

// Dictionary is an ordered mapping from source term to target term.
//
// Iteration order is insertion order. When two terms overlap (a word that is
// also part of a longer phrase), the one inserted first is matched first.
// Re-inserting an existing key replaces its value but keeps its position.
// A Dictionary is read-only once a constructor has returned it.
type Dictionary struct {
	entries []Entry
	index   map[string]int
}

// NewDictionary creates a dictionary from entries, in order.
// Later entries overwrite earlier ones with the same source.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		d.set(e.Source, e.Target)
	}
	return d
}

// set inserts or overwrites a key (must only be called while building).
func (d *Dictionary) set(source, target string) {
	if i, ok := d.index[source]; ok {
		d.entries[i].Target = target
		return
	}
	d.index[source] = len(d.entries)
	d.entries = append(d.entries, Entry{Source: source, Target: target})
}

// Lookup returns the translation of source.
func (d *Dictionary) Lookup(source string) (string, bool) {
	i, ok := d.index[source]
	if !ok {
		return "", false
	}
	return d.entries[i].Target, true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a copy of all entries in iteration order.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Keys returns all source terms in iteration order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Source
	}
	return keys
}

// Dictionaries holds the four directional dictionaries used for translation.
type Dictionaries struct {
	AmericanToBritish           *Dictionary
	BritishToAmerican           *Dictionary
	AmericanToBritishHonorifics *Dictionary
	BritishToAmericanHonorifics *Dictionary
}

// BuildDictionaries derives the directional dictionaries from raw tables.
//
// The British → American spelling dictionary is the spelling table with each
// pair swapped. When two American spellings share one British spelling the
// last one in the table wins.
func BuildDictionaries(t Tables) *Dictionaries {
	amToBr := &Dictionary{index: make(map[string]int)}
	brToAm := &Dictionary{index: make(map[string]int)}

	for _, e := range t.Spelling {
		amToBr.set(strings.ToLower(e.Source), strings.ToLower(e.Target))
	}
	for _, e := range amToBr.entries {
		brToAm.set(e.Target, e.Source)
	}
	for _, e := range t.AmericanOnly {
		amToBr.set(strings.ToLower(e.Source), strings.ToLower(e.Target))
	}
	for _, e := range t.BritishOnly {
		brToAm.set(strings.ToLower(e.Source), strings.ToLower(e.Target))
	}

	amToBrTitles := &Dictionary{index: make(map[string]int)}
	brToAmTitles := &Dictionary{index: make(map[string]int)}
	for _, e := range t.Honorifics {
		am, br := strings.ToLower(e.Source), strings.ToLower(e.Target)
		amToBrTitles.set(am, br)
		amToBrTitles.set(Capitalize(am), Capitalize(br))
		brToAmTitles.set(br, am)
		brToAmTitles.set(Capitalize(br), Capitalize(am))
	}

	return &Dictionaries{
		AmericanToBritish:           amToBr,
		BritishToAmerican:           brToAm,
		AmericanToBritishHonorifics: amToBrTitles,
		BritishToAmericanHonorifics: brToAmTitles,
	}
}

// Terms returns the term dictionary for a direction.
func (d *Dictionaries) Terms(dir Direction) *Dictionary {
	if dir == ToAmerican {
		return d.BritishToAmerican
	}
	return d.AmericanToBritish
}

// Honorifics returns the honorific dictionary for a direction.
func (d *Dictionaries) Honorifics(dir Direction) *Dictionary {
	if dir == ToAmerican {
		return d.BritishToAmericanHonorifics
	}
	return d.AmericanToBritishHonorifics
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// startsUpper reports whether s begins with an upper-case letter.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
