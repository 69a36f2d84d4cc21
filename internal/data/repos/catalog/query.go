package catalog

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
)

// Shared query helpers for the per-table repos. Every list is ordered by primary
// key so "store order" is deterministic across drivers.

func createRows[T any](dbc dbctx.Context, db *gorm.DB, rows []*T) ([]*T, error) {
	if len(rows) == 0 {
		return []*T{}, nil
	}
	if err := dbc.DB(db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func listAll[T any](dbc dbctx.Context, db *gorm.DB, order string) ([]*T, error) {
	var out []*T
	if err := dbc.DB(db).Order(order).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func listWhereIn[T any](dbc dbctx.Context, db *gorm.DB, column string, ids []string, order string) ([]*T, error) {
	var out []*T
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(db).
		Where(column+" IN ?", ids).
		Order(order).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func firstByID[T any](dbc dbctx.Context, db *gorm.DB, column, id string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	rows, err := listWhereIn[T](dbc, db, column, []string{id}, column)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func countRows[T any](dbc dbctx.Context, db *gorm.DB) (int64, error) {
	var n int64
	if err := dbc.DB(db).Model(new(T)).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// searchColumn does a case-insensitive substring match on column, capped at limit,
// in primary-key order. Both sides are folded by the store's LOWER(); LIKE
// wildcards in query match literally.
func searchColumn[T any](dbc dbctx.Context, db *gorm.DB, column, order, query string, limit int) ([]*T, error) {
	var out []*T
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return out, nil
	}
	if err := dbc.DB(db).
		Where("LOWER("+column+") LIKE LOWER(?) ESCAPE '\\'", containsPattern(query)).
		Order(order).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func deleteByID[T any](dbc dbctx.Context, db *gorm.DB, column, id string) (int64, error) {
	res := dbc.DB(db).Where(column+" = ?", id).Delete(new(T))
	return res.RowsAffected, res.Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
