package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows/config"
	"github.com/s0up4200/myshows/filter"
	"github.com/s0up4200/myshows/myshows"
	"github.com/s0up4200/myshows/sessionstore"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *myshows.Client
	store   sessionstore.Store

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "myshows",
	Short: "A command-line client for the MyShows JSON-RPC API",
	Long: `myshows talks to the MyShows v2 and v3 JSON-RPC APIs. It logs in once,
keeps the issued sessions in the OS keyring, and lets you browse shows,
movies, lists and profiles or call any RPC method directly.

Results are printed as JSON and can be narrowed with --filter, e.g.
  myshows shows search lost --filter 'year > 2000 and rating >= 4'`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if isTerminal(os.Stdout) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to result items")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// initializeApp loads configuration, builds the client and rebinds any
// stored sessions
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Reject a bad filter before any request goes out
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		if _, err := filter.CompileFilter(expression); err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	client, err = newClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MyShows client: %w", err)
	}

	store = newStore(cfg)
	client = restoreSessions(client, store)

	return nil
}

// initializeLogger is the pre-run for commands that need no config
func initializeLogger(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
	return nil
}

// newClient builds a MyShows client from cfg
func newClient(cfg *config.Config) (*myshows.Client, error) {
	creds := myshows.Credentials{
		ClientID:     cfg.Credentials.ClientID,
		ClientSecret: cfg.Credentials.ClientSecret,
		Username:     cfg.Credentials.Username,
		Password:     cfg.Credentials.Password,
	}

	opts := []myshows.Option{
		myshows.WithTimeout(cfg.HTTP.Timeout),
		myshows.WithEndpoints(myshows.Endpoints{
			AuthURL:   cfg.Endpoints.AuthURL,
			AuthURLV3: cfg.Endpoints.AuthURLV3,
			BaseURLV2: cfg.Endpoints.RPCURLV2,
			BaseURLV3: cfg.Endpoints.RPCURLV3,
		}),
	}
	if cfg.HTTP.UserAgent != "" {
		opts = append(opts, myshows.WithUserAgent(cfg.HTTP.UserAgent))
	} else {
		opts = append(opts, myshows.WithUserAgent("myshows-cli/"+version))
	}

	return myshows.NewClient(creds, logger, opts...)
}

// newStore returns the keyring store for the configured account, or a
// no-op store when persistence is off or no account is known
func newStore(cfg *config.Config) sessionstore.Store {
	if !cfg.Session.Keyring || cfg.Credentials.Username == "" {
		return sessionstore.Nop{}
	}
	return sessionstore.NewKeyring(cfg.Session.Service, cfg.Credentials.Username)
}

// restoreSessions binds every stored session to c
func restoreSessions(c *myshows.Client, s sessionstore.Store) *myshows.Client {
	for _, v := range []myshows.APIVersion{myshows.V2, myshows.V3} {
		session, err := s.Load(v)
		if err != nil {
			if !errors.Is(err, sessionstore.ErrNotFound) {
				logger.Warn().Err(err).Str("version", v.String()).Msg("Failed to load stored session")
			}
			continue
		}
		if !session.ExpiresAt().IsZero() && time.Now().After(session.ExpiresAt()) {
			logger.Debug().Str("version", v.String()).Msg("Stored session expired")
			continue
		}
		c = c.WithSession(session)
		logger.Debug().Str("version", v.String()).Msg("Restored session")
	}
	return c
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

// getFilterExpression determines the filter expression to use; empty means
// no filtering
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}
