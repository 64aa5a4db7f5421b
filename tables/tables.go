// Package tables loads the word tables the translator is built from.
//
// The bundled tables are embedded TOML files, one per table. Users can
// overlay their own rows from a single TOML or YAML file holding any of the
// four tables:
//
//	# TOML
//	spelling = [["color", "colour"]]
//	american_only = [["parking lot", "car park"]]
//
//	# YAML, rows keep file order
//	spelling:
//	  color: colour
//	british_only:
//	  car park: parking lot
//
// Every term is trimmed, NFC-normalised and lower-cased on load.
package tables

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/ZaguanLabs/dialect"
)

// Table names, as used in files and errors.
const (
	Spelling     = "spelling"
	Honorifics   = "honorifics"
	AmericanOnly = "american_only"
	BritishOnly  = "british_only"
)

// Names lists the table names in build order.
var Names = []string{Spelling, Honorifics, AmericanOnly, BritishOnly}

//go:embed data/*.toml
var dataFS embed.FS

// bundledFile is the layout of one embedded table.
type bundledFile struct {
	Table string     `toml:"table"`
	Pairs [][]string `toml:"pairs"`
}

// overlayFile is the layout of a user TOML file.
type overlayFile struct {
	Spelling     [][]string `toml:"spelling"`
	Honorifics   [][]string `toml:"honorifics"`
	AmericanOnly [][]string `toml:"american_only"`
	BritishOnly  [][]string `toml:"british_only"`
}

// Default returns the bundled tables.
func Default() (dialect.Tables, error) {
	var t dialect.Tables
	for _, name := range Names {
		path := "data/" + name + ".toml"
		data, err := dataFS.ReadFile(path)
		if err != nil {
			return dialect.Tables{}, &dialect.DictionaryError{Table: name, Message: "reading bundled table", Cause: err}
		}

		var f bundledFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return dialect.Tables{}, &dialect.DictionaryError{Table: name, Message: "parsing bundled table", Cause: err}
		}
		if f.Table != name {
			return dialect.Tables{}, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("file declares table %q", f.Table)}
		}

		entries, err := pairs(name, f.Pairs)
		if err != nil {
			return dialect.Tables{}, err
		}
		*field(&t, name) = entries
	}
	return t, nil
}

// MustDefault is like Default but panics on error. The bundled tables are
// covered by tests, so a failure here is a build defect.
func MustDefault() dialect.Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadFile reads a user table file. The format follows the extension:
// .toml, .yaml or .yml.
func LoadFile(path string) (dialect.Tables, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return dialect.Tables{}, &dialect.DictionaryError{Table: path, Message: "reading file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return dialect.Tables{}, &dialect.DictionaryError{Table: path, Message: "unsupported file extension"}
}

// ParseTOML parses a user table file in TOML.
func ParseTOML(data []byte) (dialect.Tables, error) {
	var f overlayFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return dialect.Tables{}, &dialect.DictionaryError{Table: "toml", Message: "parsing file", Cause: err}
	}

	raw := map[string][][]string{
		Spelling:     f.Spelling,
		Honorifics:   f.Honorifics,
		AmericanOnly: f.AmericanOnly,
		BritishOnly:  f.BritishOnly,
	}

	var t dialect.Tables
	for _, name := range Names {
		entries, err := pairs(name, raw[name])
		if err != nil {
			return dialect.Tables{}, err
		}
		*field(&t, name) = entries
	}
	return t, nil
}

// ParseYAML parses a user table file in YAML. Each table is either a
// mapping from source to target or a list of two-element lists.
func ParseYAML(data []byte) (dialect.Tables, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return dialect.Tables{}, &dialect.DictionaryError{Table: "yaml", Message: "parsing file", Cause: err}
	}

	var t dialect.Tables
	if len(doc.Content) == 0 {
		return t, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return dialect.Tables{}, &dialect.DictionaryError{Table: "yaml", Message: "top level must be a mapping of table names"}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		target := field(&t, name)
		if target == nil {
			return dialect.Tables{}, &dialect.DictionaryError{Table: name, Message: "unknown table"}
		}

		rows, err := yamlRows(name, root.Content[i+1])
		if err != nil {
			return dialect.Tables{}, err
		}
		entries, err := pairs(name, rows)
		if err != nil {
			return dialect.Tables{}, err
		}
		*target = append(*target, entries...)
	}
	return t, nil
}

func yamlRows(name string, node *yaml.Node) ([][]string, error) {
	var rows [][]string
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return nil, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("line %d: terms must be strings", k.Line)}
			}
			rows = append(rows, []string{k.Value, v.Value})
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.SequenceNode {
				return nil, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("line %d: row must be a list", item.Line)}
			}
			var row []string
			for _, cell := range item.Content {
				if cell.Kind != yaml.ScalarNode {
					return nil, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("line %d: terms must be strings", cell.Line)}
				}
				row = append(row, cell.Value)
			}
			rows = append(rows, row)
		}
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		fallthrough
	default:
		return nil, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("line %d: table must be a mapping or a list", node.Line)}
	}
	return rows, nil
}

// pairs validates rows and converts them to normalised entries.
func pairs(name string, rows [][]string) ([]dialect.Entry, error) {
	entries := make([]dialect.Entry, 0, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("row %d: expected 2 terms, got %d", i+1, len(row))}
		}
		src, dst := Normalize(row[0]), Normalize(row[1])
		if src == "" || dst == "" {
			return nil, &dialect.DictionaryError{Table: name, Message: fmt.Sprintf("row %d: empty term", i+1)}
		}
		entries = append(entries, dialect.Entry{Source: src, Target: dst})
	}
	return entries, nil
}

// Normalize trims, NFC-normalises and lower-cases a term.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// Merge appends the rows of each overlay to base, table by table. Because
// later rows overwrite earlier ones when dictionaries are built, overlay rows
// win on collision.
func Merge(base dialect.Tables, overlays ...dialect.Tables) dialect.Tables {
	out := dialect.Tables{
		Spelling:     append([]dialect.Entry(nil), base.Spelling...),
		Honorifics:   append([]dialect.Entry(nil), base.Honorifics...),
		AmericanOnly: append([]dialect.Entry(nil), base.AmericanOnly...),
		BritishOnly:  append([]dialect.Entry(nil), base.BritishOnly...),
	}
	for _, o := range overlays {
		out.Spelling = append(out.Spelling, o.Spelling...)
		out.Honorifics = append(out.Honorifics, o.Honorifics...)
		out.AmericanOnly = append(out.AmericanOnly, o.AmericanOnly...)
		out.BritishOnly = append(out.BritishOnly, o.BritishOnly...)
	}
	return out
}

// Load returns the bundled tables overlaid with the given files, in order.
func Load(paths ...string) (dialect.Tables, error) {
	base, err := Default()
	if err != nil {
		return dialect.Tables{}, err
	}

	overlays := make([]dialect.Tables, 0, len(paths))
	for _, p := range paths {
		t, err := LoadFile(p)
		if err != nil {
			return dialect.Tables{}, err
		}
		overlays = append(overlays, t)
	}
	return Merge(base, overlays...), nil
}

// Counts returns the number of rows per table, keyed by table name.
func Counts(t dialect.Tables) map[string]int {
	return map[string]int{
		Spelling:     len(t.Spelling),
		Honorifics:   len(t.Honorifics),
		AmericanOnly: len(t.AmericanOnly),
		BritishOnly:  len(t.BritishOnly),
	}
}

// field returns the slice of t that holds the named table, or nil.
func field(t *dialect.Tables, name string) *[]dialect.Entry {
	switch name {
	case Spelling:
		return &t.Spelling
	case Honorifics:
		return &t.Honorifics
	case AmericanOnly:
		return &t.AmericanOnly
	case BritishOnly:
		return &t.BritishOnly
	}
	return nil
}
