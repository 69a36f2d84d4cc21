package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type RankingRepo interface {
	Create(dbc dbctx.Context, rows []*types.Ranking) ([]*types.Ranking, error)
	ListAll(dbc dbctx.Context) ([]*types.Ranking, error)
	GetByArtistID(dbc dbctx.Context, artistID string) ([]*types.Ranking, error)
}

type rankingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRankingRepo(db *gorm.DB, baseLog *logger.Logger) RankingRepo {
	return &rankingRepo{db: db, log: baseLog.With("repo", "RankingRepo")}
}

func (r *rankingRepo) Create(dbc dbctx.Context, rows []*types.Ranking) ([]*types.Ranking, error) {
	return createRows(dbc, r.db, rows)
}

func (r *rankingRepo) ListAll(dbc dbctx.Context) ([]*types.Ranking, error) {
	return listAll[types.Ranking](dbc, r.db, "ranking_id")
}

func (r *rankingRepo) GetByArtistID(dbc dbctx.Context, artistID string) ([]*types.Ranking, error) {
	return listWhereIn[types.Ranking](dbc, r.db, "artist_id", []string{artistID}, "ranking_id")
}
