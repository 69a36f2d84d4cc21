package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/data/repos/catalog"
	"github.com/yungbote/artistdash-backend/internal/data/repos/user"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

type ProjectRepo = catalog.ProjectRepo
type ArtistRepo = catalog.ArtistRepo
type ProductionRepo = catalog.ProductionRepo
type DistributorRepo = catalog.DistributorRepo
type CollaborationRepo = catalog.CollaborationRepo
type ViewSnapshotRepo = catalog.ViewSnapshotRepo
type RankingRepo = catalog.RankingRepo
type CalendarEventRepo = catalog.CalendarEventRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return catalog.NewProjectRepo(db, baseLog)
}
func NewArtistRepo(db *gorm.DB, baseLog *logger.Logger) ArtistRepo {
	return catalog.NewArtistRepo(db, baseLog)
}
func NewProductionRepo(db *gorm.DB, baseLog *logger.Logger) ProductionRepo {
	return catalog.NewProductionRepo(db, baseLog)
}
func NewDistributorRepo(db *gorm.DB, baseLog *logger.Logger) DistributorRepo {
	return catalog.NewDistributorRepo(db, baseLog)
}
func NewCollaborationRepo(db *gorm.DB, baseLog *logger.Logger) CollaborationRepo {
	return catalog.NewCollaborationRepo(db, baseLog)
}
func NewViewSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) ViewSnapshotRepo {
	return catalog.NewViewSnapshotRepo(db, baseLog)
}
func NewRankingRepo(db *gorm.DB, baseLog *logger.Logger) RankingRepo {
	return catalog.NewRankingRepo(db, baseLog)
}
func NewCalendarEventRepo(db *gorm.DB, baseLog *logger.Logger) CalendarEventRepo {
	return catalog.NewCalendarEventRepo(db, baseLog)
}
