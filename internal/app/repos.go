package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/data/repos"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type Repos struct {
	User    repos.UserRepo
	Catalog services.CatalogRepos
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User: repos.NewUserRepo(db, log),
		Catalog: services.CatalogRepos{
			Projects:       repos.NewProjectRepo(db, log),
			Artists:        repos.NewArtistRepo(db, log),
			Productions:    repos.NewProductionRepo(db, log),
			Distributors:   repos.NewDistributorRepo(db, log),
			Collaborations: repos.NewCollaborationRepo(db, log),
			Views:          repos.NewViewSnapshotRepo(db, log),
			Rankings:       repos.NewRankingRepo(db, log),
			Events:         repos.NewCalendarEventRepo(db, log),
		},
	}
}
