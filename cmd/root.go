package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/config"
	"github.com/s0up4200/marquee/tmdb"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *tmdb.Client
	endpoints *tmdb.Endpoints

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse movie listings and trailers from the TMDB catalog",
	Long: `marquee fetches the popular, top rated and upcoming movie listings from
the TMDB catalog API and resolves YouTube trailers for individual titles.`,
	SilenceUsage: true,
}

// SetVersion records build information for the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(trailerCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// initializeApp initializes the configuration and the catalog client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client = tmdb.NewClient(logger, tmdb.WithTimeout(cfg.TMDB.Timeout))

	endpoints, err = tmdb.NewEndpoints(cfg.TMDB.URL, cfg.TMDB.APIKey)
	if err != nil {
		return fmt.Errorf("failed to build catalog endpoints: %w", err)
	}

	logger.Debug().Str("url", cfg.TMDB.URL).Msg("Catalog client ready")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
