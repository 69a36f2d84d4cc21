package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
)

func seed[T any](tb testing.TB, ctx context.Context, tx *gorm.DB, what string, row *T) *T {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed %s: %v", what, err)
	}
	return row
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, id, title string, release *datatypes.Date) *types.Project {
	tb.Helper()
	return seed(tb, ctx, tx, "project", &types.Project{
		ID:          id,
		Title:       title,
		Type:        "single",
		ReleaseDate: release,
		SongLink:    "https://example.com/" + id,
	})
}

func SeedArtist(tb testing.TB, ctx context.Context, tx *gorm.DB, id, name string) *types.Artist {
	tb.Helper()
	return seed(tb, ctx, tx, "artist", &types.Artist{ID: id, Name: name})
}

func SeedProduction(tb testing.TB, ctx context.Context, tx *gorm.DB, id, name string) *types.Production {
	tb.Helper()
	return seed(tb, ctx, tx, "production", &types.Production{ID: id, Name: name})
}

func SeedDistributor(tb testing.TB, ctx context.Context, tx *gorm.DB, id, name string) *types.Distributor {
	tb.Helper()
	return seed(tb, ctx, tx, "distributor", &types.Distributor{ID: id, Name: name})
}

func SeedCollaboration(tb testing.TB, ctx context.Context, tx *gorm.DB, id, artistID, productionID, distributorID, projectID string) *types.Collaboration {
	tb.Helper()
	return seed(tb, ctx, tx, "collaboration", &types.Collaboration{
		ID:            id,
		ArtistID:      artistID,
		ProductionID:  productionID,
		DistributorID: distributorID,
		ProjectID:     projectID,
	})
}

func SeedViews(tb testing.TB, ctx context.Context, tx *gorm.DB, id, projectID string, count int64, recorded *datatypes.Date) *types.ViewSnapshot {
	tb.Helper()
	return seed(tb, ctx, tx, "view snapshot", &types.ViewSnapshot{
		ID:           id,
		ProjectID:    projectID,
		ViewsCount:   count,
		RecordedDate: recorded,
	})
}

func SeedRanking(tb testing.TB, ctx context.Context, tx *gorm.DB, id, artistID string, position int) *types.Ranking {
	tb.Helper()
	return seed(tb, ctx, tx, "ranking", &types.Ranking{ID: id, ArtistID: artistID, Position: position})
}

func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, id, artistID string, on *datatypes.Date, description string) *types.CalendarEvent {
	tb.Helper()
	return seed(tb, ctx, tx, "calendar event", &types.CalendarEvent{
		ID:          id,
		ArtistID:    artistID,
		EventDate:   on,
		Description: description,
	})
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username, passwordHash, role string) *types.User {
	tb.Helper()
	return seed(tb, ctx, tx, "user", &types.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
}

func Date(y int, m time.Month, d int) *datatypes.Date {
	v := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}
