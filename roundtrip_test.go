package dialect

import (
	"reflect"
	"testing"
)

func TestDiffWords(t *testing.T) {
	tests := []struct {
		name          string
		before, after []string
		lost, gained  []string
	}{
		{"equal", []string{"a", "b"}, []string{"a", "b"}, []string{}, []string{}},
		{"reordered", []string{"a", "b"}, []string{"b", "a"}, []string{}, []string{}},
		{"swapped word", []string{"the", "garbage"}, []string{"the", "trash"}, []string{"garbage"}, []string{"trash"}},
		{"duplicates counted", []string{"a", "a", "b"}, []string{"a", "b"}, []string{"a"}, []string{}},
		{"empty", nil, nil, []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lost, gained := diffWords(tt.before, tt.after)
			if !reflect.DeepEqual(lost, tt.lost) {
				t.Errorf("lost = %q, want %q", lost, tt.lost)
			}
			if !reflect.DeepEqual(gained, tt.gained) {
				t.Errorf("gained = %q, want %q", gained, tt.gained)
			}
		})
	}
}

func TestWords(t *testing.T) {
	want := []string{"Mr", "Smith", "10", "30"}
	if got := words("Mr. Smith, 10:30?"); !reflect.DeepEqual(got, want) {
		t.Errorf("words() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	tr := NewTranslator(BuildDictionaries(testTables()))

	t.Run("stable", func(t *testing.T) {
		rep := tr.RoundTrip("My favorite gray color.", ToBritish)

		if rep.Forward.Text != "My favourite grey colour." {
			t.Errorf("forward = %q", rep.Forward.Text)
		}
		if !rep.Stable() {
			t.Errorf("expected a stable round trip, back = %q", rep.Back.Text)
		}
		if len(rep.Lost) != 0 || len(rep.Gained) != 0 {
			t.Errorf("unexpected diff: lost %q gained %q", rep.Lost, rep.Gained)
		}
	})

	t.Run("locale-exclusive term", func(t *testing.T) {
		rep := tr.RoundTrip("Take out the trash.", ToBritish)

		if rep.Forward.Text != "Take out the rubbish." {
			t.Errorf("forward = %q", rep.Forward.Text)
		}
		if rep.Back.Text != "Take out the rubbish." {
			t.Errorf("back = %q", rep.Back.Text)
		}
		if rep.Stable() {
			t.Error("round trip should not be stable")
		}
		if !reflect.DeepEqual(rep.Lost, []string{"trash"}) || !reflect.DeepEqual(rep.Gained, []string{"rubbish"}) {
			t.Errorf("lost %q gained %q", rep.Lost, rep.Gained)
		}
	})

	t.Run("honorific", func(t *testing.T) {
		rep := tr.RoundTrip("Dr. Who", ToBritish)
		if !rep.Stable() {
			t.Errorf("titles should come back, got %q", rep.Back.Text)
		}
	})
}
