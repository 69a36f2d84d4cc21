package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type ProjectRepo interface {
	Create(dbc dbctx.Context, rows []*types.Project) ([]*types.Project, error)
	ListAll(dbc dbctx.Context) ([]*types.Project, error)
	GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Project, error)
	GetByID(dbc dbctx.Context, id string) (*types.Project, error)
	Count(dbc dbctx.Context) (int64, error)
	SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Project, error)
	DeleteByID(dbc dbctx.Context, id string) (int64, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) Create(dbc dbctx.Context, rows []*types.Project) ([]*types.Project, error) {
	return createRows(dbc, r.db, rows)
}

func (r *projectRepo) ListAll(dbc dbctx.Context) ([]*types.Project, error) {
	return listAll[types.Project](dbc, r.db, "project_id")
}

func (r *projectRepo) GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Project, error) {
	return listWhereIn[types.Project](dbc, r.db, "project_id", ids, "project_id")
}

func (r *projectRepo) GetByID(dbc dbctx.Context, id string) (*types.Project, error) {
	return firstByID[types.Project](dbc, r.db, "project_id", id)
}

func (r *projectRepo) Count(dbc dbctx.Context) (int64, error) {
	return countRows[types.Project](dbc, r.db)
}

func (r *projectRepo) SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Project, error) {
	return searchColumn[types.Project](dbc, r.db, "title", "project_id", query, limit)
}

func (r *projectRepo) DeleteByID(dbc dbctx.Context, id string) (int64, error) {
	return deleteByID[types.Project](dbc, r.db, "project_id", id)
}
