package main

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/artistdash-backend/internal/app"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and report indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			store, err := app.OpenStore(log, cfg.DB)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			log.Info("schema up to date", "driver", cfg.DB.Driver)
			return nil
		},
	}
}
