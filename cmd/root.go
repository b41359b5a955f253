package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gitlab.com/lightning-bot/sanctum-go/config"
	"gitlab.com/lightning-bot/sanctum-go/sanctum"
)

// skipClientAnnotation marks commands that run without configuration or an
// API client, such as version and update.
const skipClientAnnotation = "sanctumctl/skip-client"

var (
	cfgFile  string
	apiURL   string
	apiToken string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *sanctum.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sanctumctl",
	Short: "Inspect and manage data stored in the Sanctum API",
	Long: `sanctumctl is a CLI for the Sanctum API used by the bot. It can read and
modify guild state, timers, reminders and moderation infractions.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information injected by the linker.
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(shutdownApp)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "Sanctum API URL (overrides sanctum.url)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Sanctum API token (overrides sanctum.token)")

	// Add subcommands
	rootCmd.AddCommand(guildCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(reminderCmd)
	rootCmd.AddCommand(infractionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// skipsClient reports whether cmd, or one of its parents, runs without a client.
// Cobra's generated help and completion commands count as such.
func skipsClient(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipClientAnnotation] != "" {
			return true
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	if skipsClient(cmd) {
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
		return nil
	}

	var overrides []config.Option
	if cmd.Flags().Changed("url") {
		overrides = append(overrides, config.WithOverride("sanctum.url", apiURL))
	}
	if cmd.Flags().Changed("token") {
		overrides = append(overrides, config.WithOverride("sanctum.token", apiToken))
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile, overrides...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []sanctum.Option{
		sanctum.WithTimeout(cfg.Sanctum.Timeout),
		sanctum.WithCodec(sanctum.NewCodec(cfg.Sanctum.FastJSON)),
		sanctum.WithConcurrency(cfg.CLI.Concurrency),
	}
	if cfg.Sanctum.UserAgent != "" {
		opts = append(opts, sanctum.WithUserAgent(cfg.Sanctum.UserAgent))
	}

	client, err = sanctum.NewClient(cfg.Sanctum.URL, cfg.Sanctum.Token, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Sanctum client: %w", err)
	}

	logger.Debug().Str("url", cfg.Sanctum.URL).Msg("Sanctum client ready")
	return nil
}

// shutdownApp releases the client's connections once the command finished,
// whether or not it succeeded
func shutdownApp() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close Sanctum client")
	}
	client = nil
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
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the sanctumctl version",
	Annotations: map[string]string{skipClientAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sanctumctl %s (built %s)\n", version, buildTime)
	},
}
