package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type ArtistRepo interface {
	Create(dbc dbctx.Context, rows []*types.Artist) ([]*types.Artist, error)
	ListAll(dbc dbctx.Context) ([]*types.Artist, error)
	GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Artist, error)
	GetByID(dbc dbctx.Context, id string) (*types.Artist, error)
	Count(dbc dbctx.Context) (int64, error)
	SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Artist, error)
	DeleteByID(dbc dbctx.Context, id string) (int64, error)
}

type artistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArtistRepo(db *gorm.DB, baseLog *logger.Logger) ArtistRepo {
	return &artistRepo{db: db, log: baseLog.With("repo", "ArtistRepo")}
}

func (r *artistRepo) Create(dbc dbctx.Context, rows []*types.Artist) ([]*types.Artist, error) {
	return createRows(dbc, r.db, rows)
}

func (r *artistRepo) ListAll(dbc dbctx.Context) ([]*types.Artist, error) {
	return listAll[types.Artist](dbc, r.db, "artist_id")
}

func (r *artistRepo) GetByIDs(dbc dbctx.Context, ids []string) ([]*types.Artist, error) {
	return listWhereIn[types.Artist](dbc, r.db, "artist_id", ids, "artist_id")
}

func (r *artistRepo) GetByID(dbc dbctx.Context, id string) (*types.Artist, error) {
	return firstByID[types.Artist](dbc, r.db, "artist_id", id)
}

func (r *artistRepo) Count(dbc dbctx.Context) (int64, error) {
	return countRows[types.Artist](dbc, r.db)
}

func (r *artistRepo) SearchByName(dbc dbctx.Context, query string, limit int) ([]*types.Artist, error) {
	return searchColumn[types.Artist](dbc, r.db, "name", "artist_id", query, limit)
}

func (r *artistRepo) DeleteByID(dbc dbctx.Context, id string) (int64, error) {
	return deleteByID[types.Artist](dbc, r.db, "artist_id", id)
}
