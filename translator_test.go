package dialect_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/ZaguanLabs/dialect"
	"github.com/ZaguanLabs/dialect/cache"
	"github.com/ZaguanLabs/dialect/tables"
)

var (
	defaultOnce  sync.Once
	defaultDicts *dialect.Dictionaries
)

// newTranslator builds a translator over the built-in tables.
func newTranslator(t testing.TB, opts ...dialect.TranslatorOption) *dialect.Translator {
	t.Helper()
	defaultOnce.Do(func() {
		defaultDicts = dialect.BuildDictionaries(tables.MustDefault())
	})
	return dialect.NewTranslator(defaultDicts, opts...)
}

func TestTranslate_Scenarios(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name  string
		input string
		dir   dialect.Direction
		want  string
		terms []string
	}{
		{
			name:  "spelling",
			input: "Mangoes are my favorite fruit.",
			dir:   dialect.ToBritish,
			want:  "Mangoes are my favourite fruit.",
			terms: []string{"favourite"},
		},
		{
			name:  "yogurt",
			input: "I ate yogurt for breakfast.",
			dir:   dialect.ToBritish,
			want:  "I ate yoghurt for breakfast.",
			terms: []string{"yoghurt"},
		},
		{
			name:  "time and british-only term",
			input: "Paracetamol takes up to 10.30 to work.",
			dir:   dialect.ToAmerican,
			want:  "Tylenol takes up to 10:30 to work.",
			terms: []string{"10:30", "tylenol"},
		},
		{
			name:  "honorific",
			input: "Mr. Smith is here.",
			dir:   dialect.ToBritish,
			want:  "Mr Smith is here.",
			terms: []string{"Mr"},
		},
		{
			name:  "empty to british",
			input: "",
			dir:   dialect.ToBritish,
			want:  "",
			terms: []string{},
		},
		{
			name:  "empty to american",
			input: "",
			dir:   dialect.ToAmerican,
			want:  "",
			terms: []string{},
		},
		{
			name:  "nothing to change",
			input: "Everything here is already British.",
			dir:   dialect.ToBritish,
			want:  "Everything here is already British.",
			terms: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tr.Translate(tt.input, tt.dir)

			if r.Text != tt.want {
				t.Errorf("Text = %q, want %q", r.Text, tt.want)
			}
			if !reflect.DeepEqual(r.Terms, tt.terms) {
				t.Errorf("Terms = %q, want %q", r.Terms, tt.terms)
			}
			if got := strings.Join(r.Tokens, ""); got != r.Text {
				t.Errorf("tokens join to %q, want %q", got, r.Text)
			}
		})
	}
}

func TestTranslate_AlreadyInTarget(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		input string
		dir   dialect.Direction
	}{
		{"My favourite colour is grey.", dialect.ToBritish},
		{"Mr Smith left the car park at 10.30.", dialect.ToBritish},
		{"My favorite color is gray.", dialect.ToAmerican},
		{"Mr. Smith left the parking lot at 10:30.", dialect.ToAmerican},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := tr.Translate(tt.input, tt.dir)
			if r.Text != tt.input || r.Changed() {
				t.Errorf("Translate(%q) = %q with terms %q, want unchanged", tt.input, r.Text, r.Terms)
			}
		})
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	tr := newTranslator(t)

	for _, input := range []string{
		"Mangoes are my favorite fruit.",
		"Dr. Jones parked in the parking lot at 9:45.",
		"The theater program was canceled.",
	} {
		once := tr.Translate(input, dialect.ToBritish)
		twice := tr.Translate(once.Text, dialect.ToBritish)
		if twice.Text != once.Text || twice.Changed() {
			t.Errorf("second pass over %q changed it to %q (%q)", once.Text, twice.Text, twice.Terms)
		}
	}
}

func TestTranslate_Capitalization(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		input string
		want  string
	}{
		{"Color me surprised.", "Colour me surprised."},
		{"What a color.", "What a colour."},
		{"Parking lot full.", "Car park full."},
		{"Find a parking lot.", "Find a car park."},
		{"DR. Who", "DR. Who"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := tr.Translate(tt.input, dialect.ToBritish).Text; got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Terms follow dictionary order when it differs from reading order.
func TestTranslate_TermOrder(t *testing.T) {
	tr := newTranslator(t)

	r := tr.Translate("The gray color.", dialect.ToBritish)
	if r.Text != "The grey colour." {
		t.Errorf("Text = %q", r.Text)
	}
	if want := []string{"colour", "grey"}; !reflect.DeepEqual(r.Terms, want) {
		t.Errorf("Terms = %q, want %q", r.Terms, want)
	}

	// Honorifics and times are recorded before dictionary terms.
	r = tr.Translate("At 10:30 Mr. Smith ate yogurt.", dialect.ToBritish)
	if want := []string{"Mr", "10.30", "yoghurt"}; !reflect.DeepEqual(r.Terms, want) {
		t.Errorf("Terms = %q, want %q", r.Terms, want)
	}
}

func TestTranslate_PhraseBeforeWord(t *testing.T) {
	tr := newTranslator(t)

	r := tr.Translate("Where is the trash can?", dialect.ToBritish)
	if r.Text != "Where is the bin?" {
		t.Errorf("Text = %q", r.Text)
	}
	if want := []string{"bin"}; !reflect.DeepEqual(r.Terms, want) {
		t.Errorf("Terms = %q, want %q", r.Terms, want)
	}
}

func TestTranslate_RoundTripDiverges(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		input string
		dir   dialect.Direction
		back  string
	}{
		{"Take out the garbage.", dialect.ToBritish, "Take out the trash."},
		{"Paracetamol helps.", dialect.ToAmerican, "Tylenol helps."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rep := tr.RoundTrip(tt.input, tt.dir)
			if rep.Back.Text != tt.back {
				t.Errorf("back = %q, want %q", rep.Back.Text, tt.back)
			}
			if rep.Stable() {
				t.Error("round trip should diverge")
			}
		})
	}
}

func TestTranslate_InvalidDirection(t *testing.T) {
	tr := newTranslator(t)

	r := tr.Translate("My favorite color.", dialect.Direction("toFrench"))
	if r.Text != "My favorite color." || r.Changed() {
		t.Errorf("invalid direction should leave text unchanged, got %q %q", r.Text, r.Terms)
	}
}

func TestTranslate_Concurrent(t *testing.T) {
	tr := newTranslator(t, dialect.WithCache(cache.NewInMemoryCache(0)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := tr.Translate("My favorite color.", dialect.ToBritish).Text; got != "My favourite colour." {
				t.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()
}

func TestTranslate_Cache(t *testing.T) {
	c := cache.NewInMemoryCache(3600)
	tr := newTranslator(t, dialect.WithCache(c))

	first := tr.Translate("My favorite color.", dialect.ToBritish)
	second := tr.Translate("My favorite color.", dialect.ToBritish)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 cache entry, got %d", c.Len())
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %+v", s)
	}

	tr.Translate("My favorite color.", dialect.ToAmerican)
	if c.Len() != 2 {
		t.Errorf("directions should be cached separately, got %d entries", c.Len())
	}
}

func TestTranslate_CacheKeyIncludesTables(t *testing.T) {
	c := cache.NewInMemoryCache(3600)

	a := newTranslator(t, dialect.WithCache(c))
	b := dialect.NewTranslator(dialect.BuildDictionaries(dialect.Tables{
		Spelling: []dialect.Entry{{Source: "color", Target: "kolour"}},
	}), dialect.WithCache(c))

	a.Translate("color", dialect.ToBritish)
	if got := b.Translate("color", dialect.ToBritish).Text; got != "kolour" {
		t.Errorf("translator with other tables read a foreign cache entry: %q", got)
	}
}

func TestTranslate_UnreadableCacheEntry(t *testing.T) {
	c := cache.NewInMemoryCache(3600)
	tr := newTranslator(t, dialect.WithCache(c))

	key := dialect.CacheKeyExtended(dialect.HashText("gray"), dialect.ToBritish, tr.Dictionaries().Fingerprint())
	c.Set(key, "not json")

	if got := tr.Translate("gray", dialect.ToBritish).Text; got != "grey" {
		t.Errorf("got %q", got)
	}
	if v, _ := c.Get(key); v == "not json" {
		t.Error("unreadable entry should be replaced")
	}
}

type failingCache struct{}

func (failingCache) Get(string) (string, bool) { return "", false }
func (failingCache) Set(string, string) error  { return errors.New("disk full") }

func TestTranslate_CacheWriteFailureIgnored(t *testing.T) {
	tr := newTranslator(t, dialect.WithCache(failingCache{}))

	if got := tr.Translate("gray", dialect.ToBritish).Text; got != "grey" {
		t.Errorf("got %q", got)
	}
}

func TestTranslateBatch(t *testing.T) {
	tr := newTranslator(t, dialect.WithWorkers(3))

	inputs := []string{"color", "gray", "", "Mr. Smith", "nothing"}
	results, err := tr.TranslateBatch(context.Background(), inputs, dialect.ToBritish)
	if err != nil {
		t.Fatalf("TranslateBatch failed: %v", err)
	}

	want := []string{"colour", "grey", "", "Mr Smith", "nothing"}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for i, r := range results {
		if r.Text != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, r.Text, want[i])
		}
	}
}

func TestTranslateBatch_Errors(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.TranslateBatch(context.Background(), []string{"color"}, dialect.Direction("up"))
	var dirErr *dialect.DirectionError
	if !errors.As(err, &dirErr) {
		t.Errorf("expected DirectionError, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.TranslateBatch(ctx, []string{"color", "gray"}, dialect.ToBritish)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	var trErr *dialect.TranslationError
	if !errors.As(err, &trErr) {
		t.Errorf("expected TranslationError, got %T", err)
	}
}

func TestNewTranslator_NilDictionaries(t *testing.T) {
	tr := dialect.NewTranslator(nil)

	r := tr.Translate("My favorite color.", dialect.ToBritish)
	if r.Text != "My favorite color." || r.Changed() {
		t.Errorf("empty translator changed text: %q", r.Text)
	}
}
