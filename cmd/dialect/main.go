// Command dialect translates text between American and British English.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/dialect"
	"github.com/ZaguanLabs/dialect/cache"
	"github.com/ZaguanLabs/dialect/internal/config"
	"github.com/ZaguanLabs/dialect/internal/messages"
	"github.com/ZaguanLabs/dialect/processor"
	"github.com/ZaguanLabs/dialect/tables"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = dialect.FullVersion()
	commit    = dialect.GitCommit
	buildDate = dialect.BuildDate
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every command needs once the root command has set up.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// flags shared by all commands
	envFile   string
	tables    []string
	direction string
	redisURL  string
	workers   int
	verbose   bool
	quiet     bool

	cfg        *config.Config
	logger     zerolog.Logger
	msgs       *messages.Catalog
	dicts      *dialect.Dictionaries
	cache      cache.Enumerable
	closeCache func() error
	translator *dialect.Translator
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           dialect.Name,
		Short:         "Translate between American and British English",
		Long:          "Swaps region-specific spelling, vocabulary, honorifics and time notation while keeping capitalization and punctuation.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "Environment file to load")
	flags.StringSliceVar(&a.tables, "tables", nil, "Extra word table files (.toml, .yaml), overlaid in order")
	flags.StringVarP(&a.direction, "direction", "d", "", "Target variant: british, american, en-GB, en-US (default from DIALECT_DIRECTION)")
	flags.StringVar(&a.redisURL, "redis", "", "Redis URL for a shared result cache (default from DIALECT_REDIS_URL)")
	flags.IntVar(&a.workers, "workers", 0, "Worker goroutines for documents (default from DIALECT_WORKERS)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Only print the translation")

	root.AddCommand(a.translateCmd())
	root.AddCommand(a.roundTripCmd())
	root.AddCommand(a.dictCmd())
	root.AddCommand(a.cacheCmd())
	root.AddCommand(a.versionCmd())

	return root
}

// setup loads configuration, applies flag overrides and builds the translator.
func (a *app) setup(cmd *cobra.Command) error {
	bootLevel := zerolog.InfoLevel
	if a.verbose {
		bootLevel = zerolog.DebugLevel
	}
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: a.stderr}).With().Timestamp().Logger().Level(bootLevel)

	cfg, err := config.Load(a.envFile, bootLogger)
	if err != nil {
		return err
	}

	if a.direction != "" {
		dir, err := dialect.ParseDirection(a.direction)
		if err != nil {
			return err
		}
		cfg.Direction = dir
	}
	if len(a.tables) > 0 {
		cfg.Tables = append(cfg.Tables, a.tables...)
	}
	if a.redisURL != "" {
		cfg.RedisURL = a.redisURL
	}
	if a.workers > 0 {
		cfg.Workers = a.workers
	}
	if a.verbose {
		cfg.LogLevel = zerolog.DebugLevel
	}
	a.cfg = cfg

	a.logger = bootLogger.Level(cfg.LogLevel)

	a.msgs, err = messages.New(a.logger)
	if err != nil {
		return err
	}

	t, err := tables.Load(cfg.Tables...)
	if err != nil {
		return err
	}
	a.dicts = dialect.BuildDictionaries(t)
	a.logger.Debug().
		Int("american_to_british", a.dicts.AmericanToBritish.Len()).
		Int("british_to_american", a.dicts.BritishToAmerican.Len()).
		Strs("overlays", cfg.Tables).
		Msg("Dictionaries built")

	if err := a.openCache(cmd.Context()); err != nil {
		return err
	}

	a.translator = dialect.NewTranslator(a.dicts,
		dialect.WithCache(a.cache),
		dialect.WithLogger(a.logger),
		dialect.WithWorkers(cfg.Workers),
		dialect.WithProcessor(processor.NewHTMLProcessor()),
		dialect.WithProcessor(processor.NewTextProcessor()),
		dialect.WithProcessor(processor.NewGoProcessor()),
	)
	return nil
}

// openCache connects to Redis when configured and falls back to memory.
func (a *app) openCache(ctx context.Context) error {
	if a.cfg.RedisURL == "" {
		a.cache = cache.NewInMemoryCache(a.cfg.CacheTTL)
		return nil
	}

	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		URL:       a.cfg.RedisURL,
		TTL:       a.cfg.CacheTTL,
		KeyPrefix: a.cfg.CachePrefix,
	})
	if err != nil {
		return &dialect.CacheError{Message: "opening redis cache", Cause: err}
	}
	a.cache = rc.WithLogger(a.logger)
	a.closeCache = rc.Close
	a.logger.Debug().Str("prefix", a.cfg.CachePrefix).Msg("Using Redis cache")
	return nil
}

func (a *app) close() {
	if a.closeCache != nil {
		if err := a.closeCache(); err != nil {
			a.logger.Warn().Err(err).Msg("Closing cache failed")
		}
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "%s %s\n", dialect.Name, version)
			if commit != "unknown" && commit != "" {
				fmt.Fprintf(a.stdout, "  commit:  %s\n", commit)
			}
			if buildDate != "unknown" && buildDate != "" {
				fmt.Fprintf(a.stdout, "  built:   %s\n", buildDate)
			}
			return nil
		},
	}
}
