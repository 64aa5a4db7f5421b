package dialect

import (
	"strings"

	"golang.org/x/text/language"
)

// Direction selects which variant a translation produces.
type Direction string

const (
	// ToBritish translates American English into British English.
	ToBritish Direction = "toBritish"
	// ToAmerican translates British English into American English.
	ToAmerican Direction = "toAmerican"
)

// directionAliases maps the names accepted on the command line and in
// configuration to a direction. Keys are lower-case.
var directionAliases = map[string]Direction{
	"tobritish":           ToBritish,
	"british":             ToBritish,
	"british-english":     ToBritish,
	"american-to-british": ToBritish,
	"gb":                  ToBritish,
	"uk":                  ToBritish,
	"toamerican":          ToAmerican,
	"american":            ToAmerican,
	"american-english":    ToAmerican,
	"british-to-american": ToAmerican,
	"us":                  ToAmerican,
}

// ParseDirection resolves a direction name ("toBritish", "american-to-british",
// "british") or a target locale tag ("en-GB", "en_US").
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if d, ok := directionAliases[key]; ok {
		return d, nil
	}

	tag, err := language.Parse(NormalizeLocale(key))
	if err != nil {
		return "", &DirectionError{Value: s}
	}

	base, _, region := tag.Raw()
	english, _ := language.English.Base()
	if base != english {
		return "", &DirectionError{Value: s}
	}

	switch region.String() {
	case "GB":
		return ToBritish, nil
	case "US":
		return ToAmerican, nil
	}
	return "", &DirectionError{Value: s}
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == ToBritish || d == ToAmerican
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == ToBritish {
		return ToAmerican
	}
	return ToBritish
}

// Source returns the locale the input is expected to be written in.
func (d Direction) Source() language.Tag {
	return d.Reverse().Target()
}

// Target returns the locale the translation produces.
func (d Direction) Target() language.Tag {
	if d == ToBritish {
		return language.BritishEnglish
	}
	return language.AmericanEnglish
}

func (d Direction) String() string {
	return string(d)
}

// NormalizeLocale converts a locale code to BCP 47 form (e.g., "en_GB" → "en-GB").
func NormalizeLocale(code string) string {
	return strings.ReplaceAll(code, "_", "-")
}
