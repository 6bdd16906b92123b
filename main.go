package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/config"
	"github.com/Nicolas-rosa/Pokedex/logging"
	"github.com/Nicolas-rosa/Pokedex/pokeapi"
	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/ui"
)

var (
	// Global flags
	configPath  string
	count       int
	concurrency int
	baseURL     string
	perPage     int
	themeName   string
	logFile     string
	verbose     bool
	noAltScreen bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Browse the first generations of Pokémon in the terminal",
	Long: `pokedex loads Pokémon 1..N from PokeAPI in one concurrent batch and
shows them as pageable cards. Type "/" to search by name, tab to browse by
type and t to change the colour theme.

Settings come from ~/.config/pokedex/config.yaml, POKEDEX_* environment
variables and flags, in increasing precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		// The TUI owns the terminal; only subcommands may log to stderr.
		logger, err = logging.New(logging.Options{
			File:    cfg.LogFile,
			Stderr:  cmd != cmd.Root() && cfg.Verbose,
			Verbose: cfg.Verbose,
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/pokedex/config.yaml)")
	flags.IntVarP(&count, "count", "n", pokedex.DefaultCount, "number of Pokémon to load (ids 1..n)")
	flags.IntVar(&concurrency, "concurrency", config.DefaultConcurrency, "max lookups in flight, 0 for unbounded")
	flags.StringVar(&baseURL, "base-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	flags.IntVar(&perPage, "per-page", pokedex.DefaultPerPage, "cards per page")
	flags.StringVar(&themeName, "theme", pokedex.ThemeDefault.String(), "initial theme")
	flags.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")

	rootCmd.AddCommand(listCmd)
}

// applyFlags copies explicitly set flags over the file and environment values.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		c.Count = count
	}
	if flags.Changed("concurrency") {
		c.Concurrency = concurrency
	}
	if flags.Changed("base-url") {
		c.BaseURL = baseURL
	}
	if flags.Changed("per-page") {
		c.PerPage = perPage
	}
	if flags.Changed("theme") {
		c.Theme = themeName
	}
	if flags.Changed("log-file") {
		c.LogFile = logFile
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}
	if flags.Lookup("no-alt-screen") != nil && flags.Changed("no-alt-screen") {
		c.AltScreen = !noAltScreen
	}
}

func newSource() *pokeapi.Client {
	return pokeapi.New(
		pokeapi.WithBaseURL(cfg.BaseURL),
		pokeapi.WithTimeout(cfg.Timeout),
		pokeapi.WithLogger(logger.Named("pokeapi")),
	)
}

func runInteractive() error {
	theme, err := pokedex.ParseTheme(cfg.Theme)
	if err != nil {
		return err
	}

	start := time.Now()
	model := ui.NewModel(ui.Config{
		Source:      newSource(),
		Count:       cfg.Count,
		Concurrency: cfg.Concurrency,
		PerPage:     cfg.PerPage,
		Theme:       theme,
		Logger:      logger.Named("ui"),
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("session ended", zap.Duration("uptime", time.Since(start)))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
