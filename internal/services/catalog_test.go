package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/data/repos/testutil"
	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
)

func newTestCatalogService(t *testing.T) (CatalogService, CatalogRepos, *gorm.DB) {
	t.Helper()
	db := testutil.SQLite(t)
	seedCatalog(t, db)
	r := newCatalogRepos(t, db)
	return NewCatalogService(db, testutil.Logger(t), r), r, db
}

func TestInsertEachKind(t *testing.T) {
	svc, r, _ := newTestCatalogService(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}

	row, err := svc.Insert(ctx, manager, types.KindArtist, json.RawMessage(`{"artist_id":"a9","name":" Vega ","last_project_id":"p1"}`))
	require.NoError(t, err)
	artist := row.(*types.Artist)
	assert.Equal(t, "Vega", artist.Name)

	_, err = svc.Insert(ctx, admin, types.KindProject, json.RawMessage(`{"project_id":"p9","title":"Debut","release_date":"2024-10-01"}`))
	require.NoError(t, err)
	p, err := r.Projects.GetByID(dbc, "p9")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "2024-10-01", *types.FormatDate(p.ReleaseDate))

	_, err = svc.Insert(ctx, admin, types.KindProduction, json.RawMessage(`{"production_id":"pr9","name":"Attic","market_value":1200}`))
	require.NoError(t, err)
	pr, err := r.Productions.GetByID(dbc, "pr9")
	require.NoError(t, err)
	require.NotNil(t, pr)
	require.NotNil(t, pr.MarketValue)
	assert.Equal(t, int64(1200), *pr.MarketValue)

	_, err = svc.Insert(ctx, admin, types.KindDistributor, json.RawMessage(`{"distributor_id":"d9","name":"Relay","url":"https://relay.example"}`))
	require.NoError(t, err)
	n, err := r.Distributors.Count(dbc)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestInsertRejects(t *testing.T) {
	svc, _, _ := newTestCatalogService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  authz.Capability
		kind    types.Kind
		payload string
		want    error
	}{
		{"viewer cannot insert", viewer, types.KindArtist, `{"artist_id":"a9","name":"x"}`, apperr.ErrForbidden},
		{"anonymous cannot insert", authz.Capability{}, types.KindArtist, `{"artist_id":"a9","name":"x"}`, apperr.ErrUnauthorized},
		{"unknown kind", admin, types.Kind("label"), `{}`, apperr.ErrInvalidArgument},
		{"missing id", admin, types.KindArtist, `{"name":"x"}`, apperr.ErrInvalidArgument},
		{"missing name", admin, types.KindProduction, `{"production_id":"pr9"}`, apperr.ErrInvalidArgument},
		{"bad date", admin, types.KindProject, `{"project_id":"p9","release_date":"01/02/2024"}`, apperr.ErrInvalidArgument},
		{"malformed json", admin, types.KindDistributor, `{"distributor_id":`, apperr.ErrInvalidArgument},
		{"unknown last project", admin, types.KindArtist, `{"artist_id":"a9","name":"x","last_project_id":"nope"}`, apperr.ErrInvalidArgument},
		{"duplicate id", admin, types.KindArtist, `{"artist_id":"a1","name":"Again"}`, apperr.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Insert(ctx, tt.caller, tt.kind, json.RawMessage(tt.payload))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDelete(t *testing.T) {
	svc, r, _ := newTestCatalogService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, manager, types.KindArtist, "a3")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = svc.Delete(ctx, admin, types.KindArtist, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = svc.Delete(ctx, admin, types.KindProduction, "pr1")
	assert.ErrorIs(t, err, apperr.ErrConflict, "still referenced by collaborations")

	err = svc.Delete(ctx, admin, types.Kind("label"), "x")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	require.NoError(t, svc.Delete(ctx, admin, types.KindArtist, "a3"))
	a, err := r.Artists.GetByID(dbctx.Context{Ctx: ctx}, "a3")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestDeleteBlockedByDependentRows(t *testing.T) {
	svc, _, db := newTestCatalogService(t)
	ctx := context.Background()

	_, err := svc.Insert(ctx, admin, types.KindProject, json.RawMessage(`{"project_id":"p8","title":"Orphan"}`))
	require.NoError(t, err)
	testutil.SeedViews(t, ctx, db, "vx", "p8", 1, nil)
	err = svc.Delete(ctx, admin, types.KindProject, "p8")
	assert.ErrorIs(t, err, apperr.ErrConflict, "view snapshots still point at the project")

	testutil.SeedRanking(t, ctx, db, "rx", "a3", 1)
	err = svc.Delete(ctx, admin, types.KindArtist, "a3")
	assert.ErrorIs(t, err, apperr.ErrConflict, "rankings still point at the artist")
}
