package services

import (
	"github.com/yungbote/artistdash-backend/internal/data/repos"
	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
)

// CatalogRepos bundles the catalog tables the report, search and catalog
// services read.
type CatalogRepos struct {
	Projects       repos.ProjectRepo
	Artists        repos.ArtistRepo
	Productions    repos.ProductionRepo
	Distributors   repos.DistributorRepo
	Collaborations repos.CollaborationRepo
	Views          repos.ViewSnapshotRepo
	Rankings       repos.RankingRepo
	Events         repos.CalendarEventRepo
}

// SearchMatch is one search hit. SongLink is only set for projects.
type SearchMatch struct {
	Type     types.Kind `json:"type"`
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	SongLink *string    `json:"song_link,omitempty"`
}

// kindAccessor is the per-kind half of every operation that dispatches on an
// entity kind string.
type kindAccessor struct {
	lookup     func(dbc dbctx.Context, id string) (any, bool, error)
	search     func(dbc dbctx.Context, query string, limit int) ([]SearchMatch, error)
	create     func(dbc dbctx.Context, row any) error
	remove     func(dbc dbctx.Context, id string) (int64, error)
	dependents func(dbc dbctx.Context, id string) (int, error)
}

func newKindTable(r CatalogRepos) map[types.Kind]kindAccessor {
	return map[types.Kind]kindAccessor{
		types.KindArtist: {
			lookup: func(dbc dbctx.Context, id string) (any, bool, error) {
				row, err := r.Artists.GetByID(dbc, id)
				return row, row != nil, err
			},
			search: func(dbc dbctx.Context, q string, limit int) ([]SearchMatch, error) {
				rows, err := r.Artists.SearchByName(dbc, q, limit)
				if err != nil {
					return nil, err
				}
				out := make([]SearchMatch, 0, len(rows))
				for _, a := range rows {
					out = append(out, SearchMatch{Type: types.KindArtist, ID: a.ID, Label: a.Name})
				}
				return out, nil
			},
			create: func(dbc dbctx.Context, row any) error {
				_, err := r.Artists.Create(dbc, []*types.Artist{row.(*types.Artist)})
				return err
			},
			remove: r.Artists.DeleteByID,
			dependents: func(dbc dbctx.Context, id string) (int, error) {
				rankings, err := r.Rankings.GetByArtistID(dbc, id)
				if err != nil {
					return 0, err
				}
				events, err := r.Events.GetByArtistID(dbc, id)
				if err != nil {
					return 0, err
				}
				return len(rankings) + len(events), nil
			},
		},
		types.KindProject: {
			lookup: func(dbc dbctx.Context, id string) (any, bool, error) {
				row, err := r.Projects.GetByID(dbc, id)
				return row, row != nil, err
			},
			search: func(dbc dbctx.Context, q string, limit int) ([]SearchMatch, error) {
				rows, err := r.Projects.SearchByName(dbc, q, limit)
				if err != nil {
					return nil, err
				}
				out := make([]SearchMatch, 0, len(rows))
				for _, p := range rows {
					link := p.SongLink
					out = append(out, SearchMatch{Type: types.KindProject, ID: p.ID, Label: p.Title, SongLink: &link})
				}
				return out, nil
			},
			create: func(dbc dbctx.Context, row any) error {
				_, err := r.Projects.Create(dbc, []*types.Project{row.(*types.Project)})
				return err
			},
			remove: r.Projects.DeleteByID,
			dependents: func(dbc dbctx.Context, id string) (int, error) {
				views, err := r.Views.GetByProjectIDs(dbc, []string{id})
				return len(views), err
			},
		},
		types.KindProduction: {
			lookup: func(dbc dbctx.Context, id string) (any, bool, error) {
				row, err := r.Productions.GetByID(dbc, id)
				return row, row != nil, err
			},
			search: func(dbc dbctx.Context, q string, limit int) ([]SearchMatch, error) {
				rows, err := r.Productions.SearchByName(dbc, q, limit)
				if err != nil {
					return nil, err
				}
				out := make([]SearchMatch, 0, len(rows))
				for _, p := range rows {
					out = append(out, SearchMatch{Type: types.KindProduction, ID: p.ID, Label: p.Name})
				}
				return out, nil
			},
			create: func(dbc dbctx.Context, row any) error {
				_, err := r.Productions.Create(dbc, []*types.Production{row.(*types.Production)})
				return err
			},
			remove:     r.Productions.DeleteByID,
			dependents: noDependents,
		},
		types.KindDistributor: {
			lookup: func(dbc dbctx.Context, id string) (any, bool, error) {
				row, err := r.Distributors.GetByID(dbc, id)
				return row, row != nil, err
			},
			search: func(dbc dbctx.Context, q string, limit int) ([]SearchMatch, error) {
				rows, err := r.Distributors.SearchByName(dbc, q, limit)
				if err != nil {
					return nil, err
				}
				out := make([]SearchMatch, 0, len(rows))
				for _, d := range rows {
					out = append(out, SearchMatch{Type: types.KindDistributor, ID: d.ID, Label: d.Name})
				}
				return out, nil
			},
			create: func(dbc dbctx.Context, row any) error {
				_, err := r.Distributors.Create(dbc, []*types.Distributor{row.(*types.Distributor)})
				return err
			},
			remove:     r.Distributors.DeleteByID,
			dependents: noDependents,
		},
	}
}

func noDependents(dbctx.Context, string) (int, error) { return 0, nil }
