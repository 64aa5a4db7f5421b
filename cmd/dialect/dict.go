package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/dialect"
	"github.com/ZaguanLabs/dialect/cache"
	"github.com/ZaguanLabs/dialect/internal/messages"
)

func (a *app) dictCmd() *cobra.Command {
	var honorifics bool

	cmd := &cobra.Command{
		Use:   "dict [filter]",
		Short: "List the dictionary used for the selected direction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dicts.Terms(a.cfg.Direction)
			if honorifics {
				d = a.dicts.Honorifics(a.cfg.Direction)
			}

			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			shown := 0
			for _, e := range d.Entries() {
				if filter != "" && !strings.Contains(strings.ToLower(e.Source+"\t"+e.Target), filter) {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", e.Source, e.Target)
				shown++
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			a.logger.Debug().Int("shown", shown).Int("total", d.Len()).Msg("Dictionary listed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&honorifics, "honorifics", false, "List honorifics instead of terms")
	return cmd
}

func (a *app) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Export or import cached translations",
	}
	cmd.AddCommand(a.cacheExportCmd(), a.cacheImportCmd())
	return cmd
}

func (a *app) cacheExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every cached translation to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Clean(args[0])
			meta := map[string]string{
				"tool":        dialect.Name,
				"version":     dialect.Version,
				"fingerprint": a.dicts.Fingerprint(),
			}

			n, err := cache.NewExporter(a.cache).ExportToFile(cmd.Context(), path, meta)
			if err != nil {
				return &dialect.CacheError{Message: "export failed", Cause: err}
			}

			if !a.quiet {
				fmt.Fprintln(a.stderr, a.msgs.T(a.cfg.Direction.Target(), messages.CacheExported, n,
					map[string]any{"Path": path}))
			}
			return nil
		},
	}
}

func (a *app) cacheImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load cached translations from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cache.NewImporter(a.cache).ImportFromFile(args[0])
			if err != nil {
				return &dialect.CacheError{Message: "import failed", Cause: err}
			}

			if fp := res.Metadata["fingerprint"]; fp != "" && fp != a.dicts.Fingerprint() {
				a.logger.Warn().
					Str("file", fp).
					Str("current", a.dicts.Fingerprint()).
					Msg("Export was made with different dictionaries, its entries will not be hit")
			}

			if !a.quiet {
				fmt.Fprintln(a.stderr, a.msgs.T(a.cfg.Direction.Target(), messages.CacheImported, res.Imported,
					map[string]any{"Skipped": res.Invalid + res.Failed}))
			}
			return nil
		},
	}
}
