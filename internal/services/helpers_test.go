package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/data/repos"
	"github.com/yungbote/artistdash-backend/internal/data/repos/testutil"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
)

var (
	admin    = authz.Capability{UserID: 1, Username: "root", Role: authz.RoleAdmin}
	manager  = authz.Capability{UserID: 2, Username: "mgr", Role: authz.RoleManager}
	viewer   = authz.Capability{UserID: 3, Username: "guest", Role: authz.RoleViewer}
	fixedNow = time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC)
)

func newCatalogRepos(t *testing.T, db *gorm.DB) CatalogRepos {
	t.Helper()
	log := testutil.Logger(t)
	return CatalogRepos{
		Projects:       repos.NewProjectRepo(db, log),
		Artists:        repos.NewArtistRepo(db, log),
		Productions:    repos.NewProductionRepo(db, log),
		Distributors:   repos.NewDistributorRepo(db, log),
		Collaborations: repos.NewCollaborationRepo(db, log),
		Views:          repos.NewViewSnapshotRepo(db, log),
		Rankings:       repos.NewRankingRepo(db, log),
		Events:         repos.NewCalendarEventRepo(db, log),
	}
}

// seedCatalog writes a small catalog:
//
//	a1 Nova  -> p1 (pr1, d1), p2 (pr1, d2), p3 (pr2, d1)
//	a2 Orion -> p1 (pr1, d1)
//	a3 Lumen -> nothing
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()
	testutil.SeedArtist(t, ctx, db, "a1", "Nova")
	testutil.SeedArtist(t, ctx, db, "a2", "Orion")
	testutil.SeedArtist(t, ctx, db, "a3", "Lumen")
	testutil.SeedProduction(t, ctx, db, "pr1", "North Studio")
	testutil.SeedProduction(t, ctx, db, "pr2", "Nova Works")
	testutil.SeedDistributor(t, ctx, db, "d1", "Wavelength")
	testutil.SeedDistributor(t, ctx, db, "d2", "Nova Digital")
	testutil.SeedProject(t, ctx, db, "p1", "Northern Lights", testutil.Date(2023, time.January, 1))
	testutil.SeedProject(t, ctx, db, "p2", "Echoes", nil)
	testutil.SeedProject(t, ctx, db, "p3", "Supernova", testutil.Date(2024, time.June, 1))
	testutil.SeedCollaboration(t, ctx, db, "c1", "a1", "pr1", "d1", "p1")
	testutil.SeedCollaboration(t, ctx, db, "c2", "a1", "pr1", "d2", "p2")
	testutil.SeedCollaboration(t, ctx, db, "c3", "a1", "pr2", "d1", "p3")
	testutil.SeedCollaboration(t, ctx, db, "c4", "a2", "pr1", "d1", "p1")
	testutil.SeedViews(t, ctx, db, "v1", "p1", 100, testutil.Date(2024, time.January, 1))
	testutil.SeedViews(t, ctx, db, "v2", "p1", 250, testutil.Date(2024, time.February, 1))
	testutil.SeedViews(t, ctx, db, "v3", "p3", 40, testutil.Date(2024, time.February, 1))
	testutil.SeedViews(t, ctx, db, "v4", "p3", 60, testutil.Date(2024, time.February, 1))
	testutil.SeedRanking(t, ctx, db, "r1", "a1", 9)
	testutil.SeedRanking(t, ctx, db, "r2", "a1", 3)
	testutil.SeedRanking(t, ctx, db, "r3", "a2", 12)
	testutil.SeedEvent(t, ctx, db, "e1", "a1", testutil.Date(2024, time.March, 20), "Festival")
	testutil.SeedEvent(t, ctx, db, "e2", "a1", testutil.Date(2024, time.March, 5), "Interview")
	testutil.SeedEvent(t, ctx, db, "e3", "a1", testutil.Date(2024, time.April, 2), "Tour start")
	testutil.SeedEvent(t, ctx, db, "e4", "a1", nil, "Unscheduled")
}

type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{revoked: map[string]time.Time{}}
}

func (m *memoryDenylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func (m *memoryDenylist) Close() error { return nil }
