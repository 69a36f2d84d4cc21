package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/artistdash-backend/internal/app"
)

var (
	cfgPath string
	cfg     app.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:           "artistdash",
		Short:         "Music catalog dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a yaml config file (default ./config.yaml)")

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
	)
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
