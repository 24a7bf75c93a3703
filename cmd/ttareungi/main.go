package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rewired-gh/ttareungi-insights/internal/config"
	"github.com/rewired-gh/ttareungi-insights/internal/logger"
)

var version = "dev"

type app struct {
	configPath string
	logLevel   string
	logFormat  string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ttareungi",
		Short: "Seoul bike share insights for foreign visitors",
		Long: `ttareungi renders the dashboard pages about foreign riders of Seoul's
public bike share and foreign visitor arrivals, in the terminal or as
Markdown, CSV, or JSON, and can push a page digest to Telegram.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: built-in defaults plus TTAREUNGI_* env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(a.pagesCmd())
	root.AddCommand(a.showCmd())
	root.AddCommand(a.sendCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if a.configPath != "" {
		logger.Debug("Configuration loaded from %s", a.configPath)
	} else {
		logger.Debug("No config file given, using defaults and environment")
	}
	a.cfg = cfg
	return nil
}
