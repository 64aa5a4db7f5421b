package dialect

import (
	"reflect"
	"testing"
)

// runSubstitute pushes text through substitute and reconcile with a single dictionary.
func runSubstitute(text string, entries ...Entry) Result {
	q := newSequence(0)
	q.appendText(text)
	terms := substitute(q, NewDictionary(entries), nil)
	reconcile(q)
	return assemble(q, terms)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		entries []Entry
		want    string
		terms   []string
	}{
		{
			name:    "single word",
			input:   "My favorite fruit.",
			entries: []Entry{{"favorite", "favourite"}},
			want:    "My favourite fruit.",
			terms:   []string{"favourite"},
		},
		{
			name:    "substring of a longer word is ignored",
			input:   "My favorite fruit.",
			entries: []Entry{{"favor", "favour"}},
			want:    "My favorite fruit.",
			terms:   []string{},
		},
		{
			name:    "only the first occurrence of a word",
			input:   "color and color",
			entries: []Entry{{"color", "colour"}},
			want:    "colour and color",
			terms:   []string{"colour"},
		},
		{
			name:    "phrase",
			input:   "The trash can is full.",
			entries: []Entry{{"trash can", "bin"}, {"trash", "rubbish"}},
			want:    "The bin is full.",
			terms:   []string{"bin"},
		},
		{
			name:    "capitalized phrase",
			input:   "Parking lot closed",
			entries: []Entry{{"parking lot", "car park"}},
			want:    "Car park closed",
			terms:   []string{"car park"},
		},
		{
			name:    "empty key never matches",
			input:   "anything",
			entries: []Entry{{"", "x"}},
			want:    "anything",
			terms:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runSubstitute(tt.input, tt.entries...)
			if r.Text != tt.want {
				t.Errorf("text = %q, want %q", r.Text, tt.want)
			}
			if !reflect.DeepEqual(r.Terms, tt.terms) {
				t.Errorf("terms = %q, want %q", r.Terms, tt.terms)
			}
		})
	}
}

// Terms are reported in dictionary order, not in the order they appear.
func TestSubstitute_DictionaryOrder(t *testing.T) {
	r := runSubstitute("Gray color", Entry{"color", "colour"}, Entry{"gray", "grey"})

	if r.Text != "Grey colour" {
		t.Errorf("text = %q", r.Text)
	}
	if want := []string{"colour", "grey"}; !reflect.DeepEqual(r.Terms, want) {
		t.Errorf("terms = %q, want %q", r.Terms, want)
	}
}

// With the single word listed first, it wins over the phrase containing it.
func TestSubstitute_OverlapFollowsDictionaryOrder(t *testing.T) {
	r := runSubstitute("The trash can is full.", Entry{"trash", "rubbish"}, Entry{"trash can", "bin"})

	if r.Text != "The rubbish can is full." {
		t.Errorf("text = %q", r.Text)
	}
	if want := []string{"rubbish"}; !reflect.DeepEqual(r.Terms, want) {
		t.Errorf("terms = %q, want %q", r.Terms, want)
	}
}

// A phrase matches when each of its words is present somewhere, and is
// written over the span starting at its first word.
func TestSubstitute_ComponentsNeedNotBeAdjacent(t *testing.T) {
	r := runSubstitute("Put the trash in the trash can.", Entry{"trash can", "bin"}, Entry{"trash", "rubbish"})

	if r.Text != "Put the bin the rubbish can." {
		t.Errorf("text = %q", r.Text)
	}
	if want := []string{"bin", "rubbish"}; !reflect.DeepEqual(r.Terms, want) {
		t.Errorf("terms = %q, want %q", r.Terms, want)
	}
}

func TestSubstitute_SkipsLockedTokens(t *testing.T) {
	q := newSequence(0)
	q.appendLocked("Mr.", "Mr")
	q.appendText(" Smith")

	terms := substitute(q, NewDictionary([]Entry{{"mr", "mister"}}), nil)
	if len(terms) != 0 {
		t.Errorf("locked token was substituted: %q", terms)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"color", "colour"},
		{"Color", "Colour"},
		{"COLOR", "Colour"},
		{"cOLOR", "colour"},
		{"SHOUTING COLOR", "SHOUTING Colour"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := runSubstitute(tt.input, Entry{"color", "colour"})
			if r.Text != tt.want {
				t.Errorf("text = %q, want %q", r.Text, tt.want)
			}
		})
	}
}

func TestAllPresent(t *testing.T) {
	q := newSequence(0)
	q.appendText("a b")

	if !allPresent(q, []string{"a", " ", "b"}) {
		t.Error("expected all parts present")
	}
	if allPresent(q, []string{"a", "c"}) {
		t.Error("c is not present")
	}
	if allPresent(q, nil) {
		t.Error("no parts should never match")
	}
}
