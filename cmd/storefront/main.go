package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool

	cfg config.Config
	log *zap.Logger
	a   *app
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront session, cart and order operations",
	Long: `storefront runs one storefront operation per invocation against the
configured Postgres catalog and the Redis-backed session.

Configuration comes from STOREFRONT_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config.Load: %w", err)
		}

		log, err = logger.New(cfg.LogMode, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		a, err = newApp(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("newApp: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(ordersCmd)
}

func main() {
	if err := run(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the command line and releases connections whether or not the command failed.
func run(root *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cleanup()

	return root.ExecuteContext(ctx)
}

func cleanup() {
	if a != nil {
		a.close()
		a = nil
	}
	if log != nil {
		_ = log.Sync()
	}
}
