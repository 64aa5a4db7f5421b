package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/dialect"
	"github.com/ZaguanLabs/dialect/internal/messages"
)

var errNoText = errors.New("empty input")

// contentTypes maps file extensions to registered processors.
var contentTypes = map[string]string{
	".html": "html",
	".htm":  "html",
	".go":   "go",
	".txt":  "text",
	".md":   "text",
}

// sentenceOutput is the JSON form of a single translation.
type sentenceOutput struct {
	Direction dialect.Direction `json:"direction"`
	dialect.Result
	Highlighted string `json:"highlighted,omitempty"`
}

// documentOutput is the JSON form of a document translation.
type documentOutput struct {
	Direction    dialect.Direction `json:"direction"`
	ContentType  string            `json:"content_type"`
	Content      string            `json:"content"`
	Terms        []string          `json:"terms"`
	TotalNodes   int               `json:"total_nodes"`
	ChangedNodes int               `json:"changed_nodes"`
	CachedCount  int               `json:"cached_count"`
	ElapsedMs    int64             `json:"elapsed_ms"`
}

func (a *app) translateCmd() *cobra.Command {
	var (
		file        string
		output      string
		contentType string
		jsonOut     bool
		highlight   bool
	)

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate a sentence, a file or standard input",
		Long: `Translates the text given as arguments. Without arguments the text is
read from --file or standard input. Single lines are translated as one
sentence; multi-line input and files are translated line by line, or node by
node for HTML and Go sources.`,
		Example: `  dialect translate "Mangoes are my favorite fruit."
  dialect translate -d american "Paracetamol takes up to 10.30 to work."
  dialect translate -f index.html -o index.en-GB.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := a.readInput(args, file)
			if err != nil {
				return err
			}

			if strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.stderr, a.msgs.Text(a.cfg.Direction.Target(), messages.NoTextToTranslate))
				return errNoText
			}

			out := a.stdout
			if output != "" {
				f, err := os.Create(output) // #nosec G304 - CLI tool writes user-specified files
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if contentType == "" {
				contentType = contentTypes[strings.ToLower(filepath.Ext(name))]
			}
			if contentType == "" && !strings.Contains(strings.TrimRight(input, "\r\n"), "\n") {
				return a.translateSentence(out, strings.TrimRight(input, "\r\n"), jsonOut, highlight)
			}
			if contentType == "" {
				contentType = "text"
			}
			return a.translateDocument(cmd, out, input, contentType, jsonOut)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&contentType, "type", "t", "", "Content type: text, html or go (default from file extension)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "Wrap changed terms in <span class='highlight'>")

	return cmd
}

// readInput returns the text to translate and a name used to pick a processor.
func (a *app) readInput(args []string, file string) (string, string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", "", errors.New("pass text arguments or --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), "", nil
	case file != "":
		data, err := os.ReadFile(file) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return "", "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), file, nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "", nil
}

func (a *app) translateSentence(out io.Writer, text string, jsonOut, highlight bool) error {
	dir := a.cfg.Direction
	r := a.translator.Translate(text, dir)

	if jsonOut {
		o := sentenceOutput{Direction: dir, Result: r}
		if highlight {
			o.Highlighted = dialect.HighlightHTML(r)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	}

	if highlight {
		fmt.Fprintln(out, dialect.HighlightHTML(r))
	} else {
		fmt.Fprintln(out, r.Text)
	}
	a.summary(r.Terms)
	return nil
}

func (a *app) translateDocument(cmd *cobra.Command, out io.Writer, input, contentType string, jsonOut bool) error {
	dir := a.cfg.Direction

	start := time.Now()
	result, err := a.translator.Process(cmd.Context(), input, contentType, dir)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	a.logger.Debug().
		Int("nodes", result.TotalNodes).
		Int("changed", result.ChangedNodes).
		Int("cached", result.CachedCount).
		Dur("elapsed", elapsed).
		Msg("Document translated")

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(documentOutput{
			Direction:    dir,
			ContentType:  contentType,
			Content:      result.Content,
			Terms:        result.Terms,
			TotalNodes:   result.TotalNodes,
			ChangedNodes: result.ChangedNodes,
			CachedCount:  result.CachedCount,
			ElapsedMs:    elapsed.Milliseconds(),
		})
	}

	fmt.Fprint(out, result.Content)
	a.summary(result.Terms)
	return nil
}

// summary reports the changed terms on stderr.
func (a *app) summary(terms []string) {
	if a.quiet {
		return
	}
	tag := a.cfg.Direction.Target()
	if len(terms) == 0 {
		fmt.Fprintln(a.stderr, a.msgs.Text(tag, messages.NothingToChange))
		return
	}
	fmt.Fprintf(a.stderr, "%s: %s\n", a.msgs.T(tag, messages.TermsChanged, len(terms), nil), strings.Join(terms, ", "))
}

func (a *app) roundTripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <text...>",
		Short: "Translate text and back again, and show which words did not survive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			rep := a.translator.RoundTrip(text, a.cfg.Direction)

			fmt.Fprintf(a.stdout, "input:    %s\n", rep.Input)
			fmt.Fprintf(a.stdout, "%-9s %s\n", a.cfg.Direction.Target().String()+":", rep.Forward.Text)
			fmt.Fprintf(a.stdout, "%-9s %s\n", a.cfg.Direction.Source().String()+":", rep.Back.Text)
			if rep.Stable() {
				fmt.Fprintln(a.stdout, "stable")
				return nil
			}
			if len(rep.Lost) > 0 {
				fmt.Fprintf(a.stdout, "lost:     %s\n", strings.Join(rep.Lost, ", "))
			}
			if len(rep.Gained) > 0 {
				fmt.Fprintf(a.stdout, "gained:   %s\n", strings.Join(rep.Gained, ", "))
			}
			return nil
		},
	}
}
