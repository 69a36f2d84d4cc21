package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/artistdash-backend/internal/data/repos"
	"github.com/yungbote/artistdash-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/artistdash-backend/internal/http/handlers"
	httpMW "github.com/yungbote/artistdash-backend/internal/http/middleware"
	"github.com/yungbote/artistdash-backend/internal/observability"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedArtist(t, ctx, db, "a1", "Nova")
	testutil.SeedProduction(t, ctx, db, "pr1", "North Studio")
	testutil.SeedDistributor(t, ctx, db, "d1", "Wavelength")
	testutil.SeedProject(t, ctx, db, "p1", "Supernova", testutil.Date(2024, time.June, 1))
	testutil.SeedCollaboration(t, ctx, db, "c1", "a1", "pr1", "d1", "p1")
	testutil.SeedViews(t, ctx, db, "v1", "p1", 42, testutil.Date(2024, time.July, 1))

	userRepo := repos.NewUserRepo(db, log)
	dbc := dbctx.Context{Ctx: ctx}
	for name, role := range map[string]authz.Role{"root": authz.RoleAdmin, "mgr": authz.RoleManager, "guest": authz.RoleViewer} {
		_, err := services.CreateUser(dbc, userRepo, name, "pw-"+name, role)
		require.NoError(t, err)
	}

	catalogRepos := services.CatalogRepos{
		Projects:       repos.NewProjectRepo(db, log),
		Artists:        repos.NewArtistRepo(db, log),
		Productions:    repos.NewProductionRepo(db, log),
		Distributors:   repos.NewDistributorRepo(db, log),
		Collaborations: repos.NewCollaborationRepo(db, log),
		Views:          repos.NewViewSnapshotRepo(db, log),
		Rankings:       repos.NewRankingRepo(db, log),
		Events:         repos.NewCalendarEventRepo(db, log),
	}
	authService, err := services.NewAuthService(log, userRepo, nil, services.AuthConfig{JWTSecret: "router-test", TokenTTL: time.Hour})
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		Log:            log,
		Metrics:        observability.NewMetrics(),
		CORS:           httpMW.CORSConfig{},
		AuthHandler:    httpH.NewAuthHandler(authService),
		AuthMiddleware: httpMW.NewAuthMiddleware(log, authService),
		ReportHandler:  httpH.NewReportHandler(services.NewReportService(db, log, catalogRepos, nil)),
		SearchHandler:  httpH.NewSearchHandler(services.NewSearchService(db, log, catalogRepos)),
		CatalogHandler: httpH.NewCatalogHandler(services.NewCatalogService(db, log, catalogRepos)),
		HealthHandler:  httpH.NewHealthHandler(db),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	rec := do(t, r, nethttp.MethodPost, "/api/login", "", map[string]string{"username": username, "password": "pw-" + username})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env.Error.Code
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, nethttp.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/dashboard", "/api/search?q=nova", "/api/artists/a1"} {
		rec := do(t, r, nethttp.MethodGet, path, "", nil)
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "unauthorized", errorCode(t, rec), path)
	}
	rec := do(t, r, nethttp.MethodGet, "/api/dashboard", "garbage", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	rec = do(t, r, nethttp.MethodPost, "/api/login", "", map[string]string{"username": "guest", "password": "nope"})
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestReadRoutes(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "guest")

	rec := do(t, r, nethttp.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var dash struct {
		Totals      map[string]int64 `json:"totals"`
		LatestViews map[string]struct {
			Views int64 `json:"views"`
		} `json:"latest_views"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, int64(1), dash.Totals["artist"])
	assert.Equal(t, int64(42), dash.LatestViews["p1"].Views)

	rec = do(t, r, nethttp.MethodGet, "/api/artists/a1", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var detail struct {
		Report struct {
			TotalViews int64 `json:"total_views"`
		} `json:"report"`
		Calendar *struct {
			Year int `json:"year"`
		} `json:"calendar"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, int64(42), detail.Report.TotalViews)
	require.NotNil(t, detail.Calendar)

	rec = do(t, r, nethttp.MethodGet, "/api/reports/distributor/d1", token, nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = do(t, r, nethttp.MethodGet, "/api/productions/missing", token, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))

	rec = do(t, r, nethttp.MethodGet, "/api/reports/project/p1", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", errorCode(t, rec))

	rec = do(t, r, nethttp.MethodGet, "/api/search?q=nova", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var search struct {
		Results []struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &search))
	require.Len(t, search.Results, 2)
	assert.Equal(t, "artist", search.Results[0].Type)
	assert.Equal(t, "project", search.Results[1].Type)

	rec = do(t, r, nethttp.MethodGet, "/api/search?q=%20", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestCatalogRoleGates(t *testing.T) {
	r := newTestRouter(t)
	guest := login(t, r, "guest")
	mgr := login(t, r, "mgr")
	root := login(t, r, "root")

	artist := map[string]any{"entity": "artist", "data": map[string]any{"artist_id": "a2", "name": "Orion"}}

	rec := do(t, r, nethttp.MethodPost, "/api/insert", guest, artist)
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", errorCode(t, rec))

	rec = do(t, r, nethttp.MethodPost, "/api/insert", mgr, artist)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, nethttp.MethodPost, "/api/insert", mgr, artist)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)

	rec = do(t, r, nethttp.MethodPost, "/api/insert", mgr, map[string]any{"entity": "label", "data": map[string]any{}})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = do(t, r, nethttp.MethodPost, "/api/delete", mgr, map[string]any{"entity": "artist", "id": "a2"})
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)

	rec = do(t, r, nethttp.MethodPost, "/api/delete", root, map[string]any{"entity": "artist", "id": "a1"})
	assert.Equal(t, nethttp.StatusConflict, rec.Code)

	rec = do(t, r, nethttp.MethodPost, "/api/delete", root, map[string]any{"entity": "artist", "id": "zz"})
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	rec = do(t, r, nethttp.MethodPost, "/api/delete", root, map[string]any{"entity": "artist", "id": "a2"})
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestLogoutWithoutRevocationStore(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "guest")

	rec := do(t, r, nethttp.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
