// Package analytics holds the pure reductions behind the reporting endpoints.
// Nothing here touches storage; callers pass in rows they have already read.
package analytics

import (
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/domain/catalog"
)

// Latest is the most recent view count recorded for one project.
type Latest struct {
	ViewsCount   int64           `json:"views"`
	RecordedDate *datatypes.Date `json:"recorded_date"`
}

// LatestViewsAll keeps, per project, the snapshot with the greatest recorded
// date. rows must be in ascending snapshot id order (string comparison, so
// "v10" precedes "v9"): among rows sharing the
// greatest date the later one wins, and an undated row never replaces a dated
// one. Projects without snapshots are absent from the result.
func LatestViewsAll(rows []*domain.ViewSnapshot) map[string]Latest {
	out := make(map[string]Latest)
	for _, v := range rows {
		if v == nil {
			continue
		}
		cur, ok := out[v.ProjectID]
		if ok && !supersedes(v.RecordedDate, cur.RecordedDate) {
			continue
		}
		out[v.ProjectID] = Latest{ViewsCount: v.ViewsCount, RecordedDate: v.RecordedDate}
	}
	return out
}

// LatestViews is LatestViewsAll narrowed to a single project.
func LatestViews(rows []*domain.ViewSnapshot, projectID string) (Latest, bool) {
	var (
		out   Latest
		found bool
	)
	for _, v := range rows {
		if v == nil || v.ProjectID != projectID {
			continue
		}
		if found && !supersedes(v.RecordedDate, out.RecordedDate) {
			continue
		}
		out = Latest{ViewsCount: v.ViewsCount, RecordedDate: v.RecordedDate}
		found = true
	}
	return out, found
}

// supersedes reports whether a row dated next, seen after one dated cur, takes
// its place.
func supersedes(next, cur *datatypes.Date) bool {
	nt, nok := catalog.DateOf(next)
	ct, cok := catalog.DateOf(cur)
	switch {
	case !nok:
		return !cok
	case !cok:
		return true
	default:
		return !nt.Before(ct)
	}
}

// dateKey orders nullable dates with absent dates below every real date.
func dateKey(d *datatypes.Date) (time.Time, bool) {
	return catalog.DateOf(d)
}
