package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return EnsureReportIndexes(db)
}

// EnsureReportIndexes adds the composite indexes the report reads rely on.
func EnsureReportIndexes(db *gorm.DB) error {
	stmts := []struct{ name, sql string }{
		{"idx_views_project_date", `CREATE INDEX IF NOT EXISTS idx_views_project_date ON views (project_id, recorded_date);`},
		{"idx_collaborations_project", `CREATE INDEX IF NOT EXISTS idx_collaborations_project ON collaborations (project_id, artist_id);`},
		{"idx_artist_calendar_date", `CREATE INDEX IF NOT EXISTS idx_artist_calendar_date ON artist_calendar (artist_id, event_date);`},
	}
	for _, st := range stmts {
		if err := db.Exec(st.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", st.name, err)
		}
	}
	return nil
}
