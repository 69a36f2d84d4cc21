package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/artistdash-backend/internal/app"
	"github.com/yungbote/artistdash-backend/internal/data/repos"
	"github.com/yungbote/artistdash-backend/internal/seed"
	"github.com/yungbote/artistdash-backend/internal/services"
)

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog rows and accounts from a yaml fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open fixture: %w", err)
			}
			defer f.Close()
			fixture, err := seed.Load(f)
			if err != nil {
				return err
			}

			store, err := app.OpenStore(log, cfg.DB)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			db := store.DB()
			seeder := seed.NewSeeder(db, log, repos.NewUserRepo(db, log), services.CatalogRepos{
				Projects:       repos.NewProjectRepo(db, log),
				Artists:        repos.NewArtistRepo(db, log),
				Productions:    repos.NewProductionRepo(db, log),
				Distributors:   repos.NewDistributorRepo(db, log),
				Collaborations: repos.NewCollaborationRepo(db, log),
				Views:          repos.NewViewSnapshotRepo(db, log),
				Rankings:       repos.NewRankingRepo(db, log),
				Events:         repos.NewCalendarEventRepo(db, log),
			})
			st, err := seeder.Apply(cmd.Context(), fixture)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users (%d skipped), %d catalog rows\n", st.Users, st.SkippedUsers, st.Rows)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "fixtures/seed.yaml", "fixture file")
	return cmd
}
