package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type ProductionRepo interface {
	Create(dbc dbctx.Context, rows []*types.Production) ([]*types.Production, error)
	ListAll(dbc dbctx.Context) ([]*types.Production, error)
	GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Production, error)
	GetByID(dbc dbctx.Context, id string) (*types.Production, error)
	Count(dbc dbctx.Context) (int64, error)
	SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Production, error)
	DeleteByID(dbc dbctx.Context, id string) (int64, error)
}

type productionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductionRepo(db *gorm.DB, baseLog *logger.Logger) ProductionRepo {
	return &productionRepo{db: db, log: baseLog.With("repo", "ProductionRepo")}
}

func (r *productionRepo) Create(dbc dbctx.Context, rows []*types.Production) ([]*types.Production, error) {
	return createRows(dbc, r.db, rows)
}

func (r *productionRepo) ListAll(dbc dbctx.Context) ([]*types.Production, error) {
	return listAll[types.Production](dbc, r.db, "production_id")
}

func (r *productionRepo) GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Production, error) {
	return listWhereIn[types.Production](dbc, r.db, "production_id", ids, "production_id")
}

func (r *productionRepo) GetByID(dbc dbctx.Context, id string) (*types.Production, error) {
	return firstByID[types.Production](dbc, r.db, "production_id", id)
}

func (r *productionRepo) Count(dbc dbctx.Context) (int64, error) {
	return countRows[types.Production](dbc, r.db)
}

func (r *productionRepo) SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Production, error) {
	return searchColumn[types.Production](dbc, r.db, "name", "production_id", query, limit)
}

func (r *productionRepo) DeleteByID(dbc dbctx.Context, id string) (int64, error) {
	return deleteByID[types.Production](dbc, r.db, "production_id", id)
}
