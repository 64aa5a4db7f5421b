package dialect

import (
	"reflect"
	"testing"
)

// testTables is a small fixture covering every table and the overlap cases.
func testTables() Tables {
	return Tables{
		Spelling: []Entry{
			{"color", "colour"},
			{"gray", "grey"},
			{"favorite", "favourite"},
		},
		Honorifics: []Entry{
			{"mr.", "mr"},
			{"dr.", "dr"},
		},
		AmericanOnly: []Entry{
			{"trash can", "bin"},
			{"trash", "rubbish"},
			{"parking lot", "car park"},
		},
		BritishOnly: []Entry{
			{"car park", "parking lot"},
			{"lift", "elevator"},
		},
	}
}

func TestBuildDictionaries(t *testing.T) {
	d := BuildDictionaries(testTables())

	wantAmBr := []string{"color", "gray", "favorite", "trash can", "trash", "parking lot"}
	if got := d.AmericanToBritish.Keys(); !reflect.DeepEqual(got, wantAmBr) {
		t.Errorf("AmericanToBritish keys = %v, want %v", got, wantAmBr)
	}

	wantBrAm := []string{"colour", "grey", "favourite", "car park", "lift"}
	if got := d.BritishToAmerican.Keys(); !reflect.DeepEqual(got, wantBrAm) {
		t.Errorf("BritishToAmerican keys = %v, want %v", got, wantBrAm)
	}

	if v, _ := d.BritishToAmerican.Lookup("grey"); v != "gray" {
		t.Errorf("reversed spelling: got %q", v)
	}
}

func TestBuildDictionaries_Honorifics(t *testing.T) {
	d := BuildDictionaries(testTables())

	tests := []struct {
		dict *Dictionary
		in   string
		want string
	}{
		{d.AmericanToBritishHonorifics, "mr.", "mr"},
		{d.AmericanToBritishHonorifics, "Mr.", "Mr"},
		{d.AmericanToBritishHonorifics, "Dr.", "Dr"},
		{d.BritishToAmericanHonorifics, "mr", "mr."},
		{d.BritishToAmericanHonorifics, "Dr", "Dr."},
	}

	for _, tt := range tests {
		got, ok := tt.dict.Lookup(tt.in)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := d.AmericanToBritishHonorifics.Lookup("MR."); ok {
		t.Error("only lower-case and capitalized titles should match")
	}
}

func TestBuildDictionaries_SharedBritishSpelling(t *testing.T) {
	d := BuildDictionaries(Tables{Spelling: []Entry{
		{"catalog", "catalogue"},
		{"catalogue", "catalogue"},
	}})

	if v, _ := d.BritishToAmerican.Lookup("catalogue"); v != "catalogue" {
		t.Errorf("last American spelling should win, got %q", v)
	}
	if d.BritishToAmerican.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", d.BritishToAmerican.Len())
	}
}

func TestBuildDictionaries_Empty(t *testing.T) {
	d := BuildDictionaries(Tables{})
	if d.Terms(ToBritish).Len() != 0 || d.Honorifics(ToAmerican).Len() != 0 {
		t.Error("empty tables should build empty dictionaries")
	}
}

func TestDictionaries_ByDirection(t *testing.T) {
	d := BuildDictionaries(testTables())

	if d.Terms(ToBritish) != d.AmericanToBritish || d.Terms(ToAmerican) != d.BritishToAmerican {
		t.Error("Terms picked the wrong dictionary")
	}
	if d.Honorifics(ToBritish) != d.AmericanToBritishHonorifics || d.Honorifics(ToAmerican) != d.BritishToAmericanHonorifics {
		t.Error("Honorifics picked the wrong dictionary")
	}
}

func TestNewDictionary_OverwriteKeepsPosition(t *testing.T) {
	d := NewDictionary([]Entry{{"a", "1"}, {"b", "2"}, {"a", "3"}})

	want := []Entry{{"a", "3"}, {"b", "2"}}
	if got := d.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	entries := d.Entries()
	entries[0].Target = "changed"
	if v, _ := d.Lookup("a"); v != "3" {
		t.Error("Entries() must return a copy")
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"colour":   "Colour",
		"Colour":   "Colour",
		"éclair":   "Éclair",
		"10.30":    "10.30",
		"car park": "Car park",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
