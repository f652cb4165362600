// Package cli provides the docsearch command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"docsearch/internal/api"
	"docsearch/internal/config"
	"docsearch/internal/logging"
)

// Version is set at build time
var Version = "dev"

// rootOptions holds the persistent flags and what they resolve to
type rootOptions struct {
	configPath string
	apiURL     string
	debug      bool

	cfg            *config.Config
	loggingCleanup func()
}

// NewRootCmd creates the root command for the docsearch CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "docsearch",
		Short: "Search a document collection from the terminal",
		Long: `docsearch is a terminal client for a document search API.

Run it without arguments for the interactive search screen, or use
the search and doc commands from scripts.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.SetVersionTemplate("docsearch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", "", "Base URL of the search API (overrides config and "+config.EnvAPIURL+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return opts.setup(cmd)
	}
	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		opts.teardown()
		return nil
	}

	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newDocCmd(opts))
	cmd.AddCommand(newHealthCmd(opts))

	return cmd
}

// setup resolves the configuration and installs the logger.
// Precedence is flags, then environment (including .env), then the config file.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if o.apiURL != "" {
		cfg.API.BaseURL = o.apiURL
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	// The TUI owns the terminal so it always logs to the file; other
	// commands only log to stderr when asked to.
	logOpts := logging.Options{Level: cfg.Logging.Level, Console: true}
	if cmd == cmd.Root() {
		logOpts.File = cfg.Logging.File
	} else if o.debug {
		logOpts.Writer = cmd.ErrOrStderr()
	} else {
		logOpts.Writer = io.Discard
	}
	cleanup, err := logging.Setup(logOpts)
	if err != nil {
		return err
	}
	o.loggingCleanup = cleanup

	log.Debug().
		Str("api", cfg.API.BaseURL).
		Int("page_size", cfg.Search.PageSize).
		Msg("configuration loaded")
	return nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	svc := config.NewConfigService()
	if o.configPath != "" {
		return svc.LoadFromPath(o.configPath)
	}
	return svc.Load()
}

func (o *rootOptions) teardown() {
	if o.loggingCleanup != nil {
		o.loggingCleanup()
		o.loggingCleanup = nil
	}
}

// client builds an API client from the resolved configuration
func (o *rootOptions) client() (*api.Client, error) {
	c, err := api.NewClient(o.cfg.API.BaseURL, api.WithTimeout(o.cfg.Timeout()))
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	return c, nil
}

// Execute runs the root command and exits non-zero on error.
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
