// Package seed loads a yaml fixture of catalog rows and dashboard accounts into
// the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbpkg "github.com/yungbote/artistdash-backend/internal/data/db"
	"github.com/yungbote/artistdash-backend/internal/data/repos"
	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type Fixture struct {
	Users          []User          `yaml:"users"`
	Projects       []Project       `yaml:"projects"`
	Artists        []Artist        `yaml:"artists"`
	Productions    []Production    `yaml:"productions"`
	Distributors   []Distributor   `yaml:"distributors"`
	Collaborations []Collaboration `yaml:"collaborations"`
	Views          []View          `yaml:"views"`
	Rankings       []Ranking       `yaml:"rankings"`
	Events         []Event         `yaml:"events"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Project struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Type        string `yaml:"type"`
	ReleaseDate string `yaml:"release_date"`
	Description string `yaml:"description"`
	SongLink    string `yaml:"song_link"`
	AlbumArt    string `yaml:"album_art"`
}

type Artist struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	PhotoURL      string `yaml:"photo_url"`
	LastProjectID string `yaml:"last_project_id"`
}

type Production struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	LogoURL       string `yaml:"logo_url"`
	MarketValue   *int64 `yaml:"market_value"`
	LastProjectID string `yaml:"last_project_id"`
}

type Distributor struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	LogoURL     string `yaml:"logo_url"`
	URL         string `yaml:"url"`
	MarketValue *int64 `yaml:"market_value"`
}

type Collaboration struct {
	ID            string `yaml:"id"`
	ArtistID      string `yaml:"artist_id"`
	ProductionID  string `yaml:"production_id"`
	DistributorID string `yaml:"distributor_id"`
	ProjectID     string `yaml:"project_id"`
}

type View struct {
	ID           string `yaml:"id"`
	ProjectID    string `yaml:"project_id"`
	Views        int64  `yaml:"views"`
	RecordedDate string `yaml:"recorded_date"`
}

type Ranking struct {
	ID       string `yaml:"id"`
	ArtistID string `yaml:"artist_id"`
	Position int    `yaml:"position"`
}

type Event struct {
	ID          string `yaml:"id"`
	ArtistID    string `yaml:"artist_id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

type Stats struct {
	Users        int
	Rows         int
	SkippedUsers int
}

type Seeder struct {
	db    *gorm.DB
	log   *logger.Logger
	users repos.UserRepo
	cat   services.CatalogRepos
}

func NewSeeder(db *gorm.DB, baseLog *logger.Logger, users repos.UserRepo, cat services.CatalogRepos) *Seeder {
	return &Seeder{db: db, log: baseLog.With("component", "Seeder"), users: users, cat: cat}
}

// Apply writes the fixture in one transaction. Existing usernames are skipped;
// a catalog id that already exists aborts the whole fixture.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Stats, error) {
	var st Stats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		for _, u := range f.Users {
			exists, err := s.users.UsernameExists(dbc, u.Username)
			if err != nil {
				return err
			}
			if exists {
				s.log.Info("user exists, skipping", "username", u.Username)
				st.SkippedUsers++
				continue
			}
			if _, err := services.CreateUser(dbc, s.users, u.Username, u.Password, authz.ParseRole(u.Role)); err != nil {
				return err
			}
			st.Users++
		}

		n, err := s.applyCatalog(dbc, f)
		st.Rows = n
		return err
	})
	if err != nil {
		return Stats{}, fmt.Errorf("seed: %w", dbpkg.TranslateError(err))
	}
	s.log.Info("seed applied", "users", st.Users, "rows", st.Rows, "skipped_users", st.SkippedUsers)
	return st, nil
}

func (s *Seeder) applyCatalog(dbc dbctx.Context, f *Fixture) (int, error) {
	projects := make([]*types.Project, 0, len(f.Projects))
	for _, p := range f.Projects {
		release, err := parseDate("project "+p.ID, p.ReleaseDate)
		if err != nil {
			return 0, err
		}
		projects = append(projects, &types.Project{
			ID: p.ID, Title: p.Title, Type: p.Type, ReleaseDate: release,
			Description: p.Description, SongLink: p.SongLink, AlbumArt: p.AlbumArt,
		})
	}
	artists := make([]*types.Artist, 0, len(f.Artists))
	for _, a := range f.Artists {
		artists = append(artists, &types.Artist{ID: a.ID, Name: a.Name, PhotoURL: a.PhotoURL, LastProjectID: optional(a.LastProjectID)})
	}
	productions := make([]*types.Production, 0, len(f.Productions))
	for _, p := range f.Productions {
		productions = append(productions, &types.Production{
			ID: p.ID, Name: p.Name, LogoURL: p.LogoURL, MarketValue: p.MarketValue, LastProjectID: optional(p.LastProjectID),
		})
	}
	distributors := make([]*types.Distributor, 0, len(f.Distributors))
	for _, d := range f.Distributors {
		distributors = append(distributors, &types.Distributor{ID: d.ID, Name: d.Name, LogoURL: d.LogoURL, URL: d.URL, MarketValue: d.MarketValue})
	}
	collabs := make([]*types.Collaboration, 0, len(f.Collaborations))
	for _, c := range f.Collaborations {
		collabs = append(collabs, &types.Collaboration{
			ID: c.ID, ArtistID: c.ArtistID, ProductionID: c.ProductionID, DistributorID: c.DistributorID, ProjectID: c.ProjectID,
		})
	}
	views := make([]*types.ViewSnapshot, 0, len(f.Views))
	for _, v := range f.Views {
		recorded, err := parseDate("view "+v.ID, v.RecordedDate)
		if err != nil {
			return 0, err
		}
		views = append(views, &types.ViewSnapshot{ID: v.ID, ProjectID: v.ProjectID, ViewsCount: v.Views, RecordedDate: recorded})
	}
	rankings := make([]*types.Ranking, 0, len(f.Rankings))
	for _, r := range f.Rankings {
		rankings = append(rankings, &types.Ranking{ID: r.ID, ArtistID: r.ArtistID, Position: r.Position})
	}
	events := make([]*types.CalendarEvent, 0, len(f.Events))
	for _, e := range f.Events {
		on, err := parseDate("event "+e.ID, e.Date)
		if err != nil {
			return 0, err
		}
		events = append(events, &types.CalendarEvent{ID: e.ID, ArtistID: e.ArtistID, EventDate: on, Description: e.Description})
	}

	steps := []struct {
		what string
		n    int
		run  func() error
	}{
		{"projects", len(projects), func() error { _, err := s.cat.Projects.Create(dbc, projects); return err }},
		{"artists", len(artists), func() error { _, err := s.cat.Artists.Create(dbc, artists); return err }},
		{"productions", len(productions), func() error { _, err := s.cat.Productions.Create(dbc, productions); return err }},
		{"distributors", len(distributors), func() error { _, err := s.cat.Distributors.Create(dbc, distributors); return err }},
		{"collaborations", len(collabs), func() error { _, err := s.cat.Collaborations.Create(dbc, collabs); return err }},
		{"views", len(views), func() error { _, err := s.cat.Views.Create(dbc, views); return err }},
		{"rankings", len(rankings), func() error { _, err := s.cat.Rankings.Create(dbc, rankings); return err }},
		{"events", len(events), func() error { _, err := s.cat.Events.Create(dbc, events); return err }},
	}
	total := 0
	for _, step := range steps {
		if step.n == 0 {
			continue
		}
		if err := step.run(); err != nil {
			return total, fmt.Errorf("insert %s: %w", step.what, err)
		}
		total += step.n
	}
	return total, nil
}

func parseDate(what, s string) (*datatypes.Date, error) {
	d, err := types.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return d, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
