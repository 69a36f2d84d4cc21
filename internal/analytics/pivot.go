package analytics

import (
	"sort"

	"gorm.io/datatypes"

	"github.com/yungbote/artistdash-backend/internal/domain"
)

const TopProjectsLimit = 5

type ProjectViews struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	SongLink  string `json:"song_link"`
	Views     int64  `json:"views"`
}

type Release struct {
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	ReleaseDate *datatypes.Date `json:"release_date"`
}

// PivotReport summarises one artist, production or distributor through the
// collaboration graph.
type PivotReport struct {
	Kind          domain.Kind         `json:"kind"`
	ID            string              `json:"id"`
	RelatedCounts map[domain.Kind]int `json:"related_counts"`
	TotalViews    int64               `json:"total_views"`
	TopProjects   []ProjectViews      `json:"top_projects"`
	LastRelease   *Release            `json:"last_release"`
}

// RelatedIDs returns the distinct ids of kind reachable from collabs, sorted.
func RelatedIDs(collabs []*domain.Collaboration, kind domain.Kind) []string {
	seen := make(map[string]struct{}, len(collabs))
	out := make([]string, 0, len(collabs))
	for _, c := range collabs {
		if c == nil {
			continue
		}
		id := c.EndpointID(kind)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// BuildPivotReport reduces the collaborations naming one pivot, together with
// the related projects and every snapshot of those projects, into a report.
// collabs must already be filtered to the pivot. Projects and snapshots outside
// the related set are ignored.
func BuildPivotReport(kind domain.Kind, id string, collabs []*domain.Collaboration, projects []*domain.Project, snapshots []*domain.ViewSnapshot) PivotReport {
	projectIDs := RelatedIDs(collabs, domain.KindProject)
	related := make(map[string]struct{}, len(projectIDs))
	for _, pid := range projectIDs {
		related[pid] = struct{}{}
	}

	counts := map[domain.Kind]int{domain.KindProject: len(projectIDs)}
	for _, other := range kind.Others() {
		counts[other] = len(RelatedIDs(collabs, other))
	}

	summed := make(map[string]int64, len(projectIDs))
	var total int64
	for _, v := range snapshots {
		if v == nil {
			continue
		}
		if _, ok := related[v.ProjectID]; !ok {
			continue
		}
		summed[v.ProjectID] += v.ViewsCount
		total += v.ViewsCount
	}

	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		if p == nil {
			continue
		}
		if _, ok := related[p.ID]; ok {
			byID[p.ID] = p
		}
	}

	return PivotReport{
		Kind:          kind,
		ID:            id,
		RelatedCounts: counts,
		TotalViews:    total,
		TopProjects:   topProjects(byID, summed, TopProjectsLimit),
		LastRelease:   lastRelease(byID),
	}
}

// topProjects ranks by summed views descending, then project id ascending.
func topProjects(projects map[string]*domain.Project, summed map[string]int64, limit int) []ProjectViews {
	out := make([]ProjectViews, 0, len(projects))
	for pid, p := range projects {
		out = append(out, ProjectViews{
			ProjectID: pid,
			Title:     p.Title,
			SongLink:  p.SongLink,
			Views:     summed[pid],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].ProjectID < out[j].ProjectID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// lastRelease picks the latest release date, treating a missing date as the
// earliest possible one. Equal dates resolve to the smaller project id, so an
// all-undated set yields its smallest id.
func lastRelease(projects map[string]*domain.Project) *Release {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]string, 0, len(projects))
	for pid := range projects {
		ids = append(ids, pid)
	}
	sort.Strings(ids)

	best := projects[ids[0]]
	for _, pid := range ids[1:] {
		p := projects[pid]
		pt, pok := dateKey(p.ReleaseDate)
		bt, bok := dateKey(best.ReleaseDate)
		if pok && (!bok || pt.After(bt)) {
			best = p
		}
	}
	return &Release{ProjectID: best.ID, Title: best.Title, ReleaseDate: best.ReleaseDate}
}
