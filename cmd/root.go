package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lnordberg/sanity-go/config"
	"github.com/lnordberg/sanity-go/sanity"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *sanity.Client

	// Command flags
	dryRun    bool
	noConfirm bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sanity-cli",
	Short: "A tool to query and mutate Sanity.io content from the command line",
	Long: `sanity-cli talks to the Sanity.io HTTP API. It runs GROQ queries,
submits mutation batches from JSON files and uploads image assets,
using the project, dataset and token from its config file.`,
	PersistentPreRunE: initializeApp,
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
}

// initializeApp initializes the configuration and the Sanity client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create Sanity client
	sanityCfg := sanity.NewConfig(cfg.Sanity.ProjectID, cfg.Sanity.Dataset,
		sanity.WithAccessToken(cfg.Sanity.AccessToken),
		sanity.WithAPIVersion(cfg.Sanity.APIVersion),
	)

	client, err = sanity.NewClient(sanityCfg, logger, sanity.WithUserAgent("sanity-cli/"+appVersion))
	if err != nil {
		return fmt.Errorf("failed to create Sanity client: %w", err)
	}

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

	// Console format; only color when stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
