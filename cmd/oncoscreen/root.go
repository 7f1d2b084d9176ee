package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/oncoscreen/internal/cli"
	"github.com/aretw0/oncoscreen/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oncoscreen",
	Short: "Oncoscreen walks patients through cancer screening questionnaires",
	Long: `Oncoscreen runs branching screening questionnaires and maps the answers
to a recommendation. It can be used interactively, as an HTTP API or as an MCP server.`,
	SilenceUsage: true,
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
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringSlice("env-file", nil, "Dotenv files to load (default .env)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("catalog-source", "", "Where catalogs come from: builtin, dir or loam")
	flags.String("catalog-path", "", "Directory holding catalog files (dir and loam sources)")
	flags.String("store", "", "Session store: memory or redis")
	flags.String("redis-addr", "", "Redis address (redis store)")
}

// loadConfig reads the environment and applies the flags that were set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"log-level":      &cfg.LogLevel,
		"log-format":     &cfg.LogFormat,
		"catalog-source": &cfg.CatalogSource,
		"catalog-path":   &cfg.CatalogPath,
		"store":          &cfg.Store,
		"redis-addr":     &cfg.RedisAddr,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bootstrap loads the configuration and wires an app. Logs go to stderr so
// stdout stays free for the session or protocol.
func bootstrap(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := cli.NewLogger(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	return cli.Bootstrap(cmd.Context(), cfg, logger)
}
