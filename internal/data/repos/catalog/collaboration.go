package catalog

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type CollaborationRepo interface {
	Create(dbc dbctx.Context, rows []*types.Collaboration) ([]*types.Collaboration, error)
	ListAll(dbc dbctx.Context) ([]*types.Collaboration, error)
	// ListForPivot returns every collaboration whose kind endpoint equals id.
	ListForPivot(dbc dbctx.Context, kind types.Kind, id string) ([]*types.Collaboration, error)
	// CountReferencing counts collaborations that still point at (kind, id).
	CountReferencing(dbc dbctx.Context, kind types.Kind, id string) (int64, error)
}

type collaborationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollaborationRepo(db *gorm.DB, baseLog *logger.Logger) CollaborationRepo {
	return &collaborationRepo{db: db, log: baseLog.With("repo", "CollaborationRepo")}
}

func (r *collaborationRepo) Create(dbc dbctx.Context, rows []*types.Collaboration) ([]*types.Collaboration, error) {
	return createRows(dbc, r.db, rows)
}

func (r *collaborationRepo) ListAll(dbc dbctx.Context) ([]*types.Collaboration, error) {
	return listAll[types.Collaboration](dbc, r.db, "colab_id")
}

func (r *collaborationRepo) ListForPivot(dbc dbctx.Context, kind types.Kind, id string) ([]*types.Collaboration, error) {
	if _, err := types.ParseKind(string(kind)); err != nil {
		return nil, fmt.Errorf("list collaborations: %w", err)
	}
	return listWhereIn[types.Collaboration](dbc, r.db, kind.Column(), []string{id}, "colab_id")
}

func (r *collaborationRepo) CountReferencing(dbc dbctx.Context, kind types.Kind, id string) (int64, error) {
	if _, err := types.ParseKind(string(kind)); err != nil {
		return 0, fmt.Errorf("count collaborations: %w", err)
	}
	var n int64
	if err := dbc.DB(r.db).
		Model(&types.Collaboration{}).
		Where(kind.Column()+" = ?", id).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
