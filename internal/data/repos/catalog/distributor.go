package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type DistributorRepo interface {
	Create(dbc dbctx.Context, rows []*types.Distributor) ([]*types.Distributor, error)
	ListAll(dbc dbctx.Context) ([]*types.Distributor, error)
	GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Distributor, error)
	GetByID(dbc dbctx.Context, id string) (*types.Distributor, error)
	Count(dbc dbctx.Context) (int64, error)
	SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Distributor, error)
	DeleteByID(dbc dbctx.Context, id string) (int64, error)
}

type distributorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDistributorRepo(db *gorm.DB, baseLog *logger.Logger) DistributorRepo {
	return &distributorRepo{db: db, log: baseLog.With("repo", "DistributorRepo")}
}

func (r *distributorRepo) Create(dbc dbctx.Context, rows []*types.Distributor) ([]*types.Distributor, error) {
	return createRows(dbc, r.db, rows)
}

func (r *distributorRepo) ListAll(dbc dbctx.Context) ([]*types.Distributor, error) {
	return listAll[types.Distributor](dbc, r.db, "distributor_id")
}

func (r *distributorRepo) GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Distributor, error) {
	return listWhereIn[types.Distributor](dbc, r.db, "distributor_id", ids, "distributor_id")
}

func (r *distributorRepo) GetByID(dbc dbctx.Context, id string) (*types.Distributor, error) {
	return firstByID[types.Distributor](dbc, r.db, "distributor_id", id)
}

func (r *distributorRepo) Count(dbc dbctx.Context) (int64, error) {
	return countRows[types.Distributor](dbc, r.db)
}

func (r *distributorRepo) SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Distributor, error) {
	return searchColumn[types.Distributor](dbc, r.db, "name", "distributor_id", query, limit)
}

func (r *distributorRepo) DeleteByID(dbc dbctx.Context, id string) (int64, error) {
	return deleteByID[types.Distributor](dbc, r.db, "distributor_id", id)
}
