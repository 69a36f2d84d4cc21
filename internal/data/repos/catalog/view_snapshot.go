package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

// ViewSnapshotRepo reads the view-count time series. Results are always in
// ascending stat_id order; the latest-views reduction depends on it.
type ViewSnapshotRepo interface {
	Create(dbc dbctx.Context, rows []*types.ViewSnapshot) ([]*types.ViewSnapshot, error)
	ListAll(dbc dbctx.Context) ([]*types.ViewSnapshot, error)
	GetByProjectIDs(dbc dbctx.Context, projectIDs []string) ([]*types.ViewSnapshot, error)
}

type viewSnapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewViewSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) ViewSnapshotRepo {
	return &viewSnapshotRepo{db: db, log: baseLog.With("repo", "ViewSnapshotRepo")}
}

func (r *viewSnapshotRepo) Create(dbc dbctx.Context, rows []*types.ViewSnapshot) ([]*types.ViewSnapshot, error) {
	return createRows(dbc, r.db, rows)
}

func (r *viewSnapshotRepo) ListAll(dbc dbctx.Context) ([]*types.ViewSnapshot, error) {
	return listAll[types.ViewSnapshot](dbc, r.db, "stat_id")
}

func (r *viewSnapshotRepo) GetByProjectIDs(dbc dbctx.Context, projectIDs []string) ([]*types.ViewSnapshot, error) {
	return listWhereIn[types.ViewSnapshot](dbc, r.db, "project_id", projectIDs, "stat_id")
}
