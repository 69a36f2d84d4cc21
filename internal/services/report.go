package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/analytics"
	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

var tracer = otel.Tracer("github.com/yungbote/artistdash-backend/internal/services")

type ArtistCard struct {
	Artist  *types.Artist          `json:"artist"`
	Ranking *int                   `json:"ranking"`
	Events  []*types.CalendarEvent `json:"events"`
}

type DashboardSummary struct {
	Totals               map[types.Kind]int64        `json:"totals"`
	Artists              []ArtistCard                `json:"artists"`
	Productions          []*types.Production         `json:"productions"`
	Distributors         []*types.Distributor        `json:"distributors"`
	LatestViewsByProject map[string]analytics.Latest `json:"latest_views"`
	Today                string                      `json:"today"`
}

// CollaborationRow is a collaboration with the names of its four endpoints
// resolved. Names are empty when the referenced row is gone.
type CollaborationRow struct {
	ID              string `json:"id"`
	ProjectID       string `json:"project_id"`
	ProjectTitle    string `json:"project_title"`
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ProductionID    string `json:"production_id"`
	ProductionName  string `json:"production_name"`
	DistributorID   string `json:"distributor_id"`
	DistributorName string `json:"distributor_name"`
}

// PivotDetail is the detail page of one artist, production or distributor.
// Ranking, Events and Calendar are only filled for artists.
type PivotDetail struct {
	Kind           types.Kind             `json:"kind"`
	Entity         any                    `json:"entity"`
	Report         analytics.PivotReport  `json:"report"`
	Collaborations []CollaborationRow     `json:"collaborations"`
	Ranking        *int                   `json:"ranking,omitempty"`
	Events         []*types.CalendarEvent `json:"events,omitempty"`
	Calendar       *analytics.MonthGrid   `json:"calendar,omitempty"`
}

type ReportService interface {
	GetDashboardSummary(ctx context.Context, caller authz.Capability) (*DashboardSummary, error)
	GetPivotDetail(ctx context.Context, caller authz.Capability, kind types.Kind, id string) (*PivotDetail, error)
}

type reportService struct {
	db    *gorm.DB
	log   *logger.Logger
	repos CatalogRepos
	kinds map[types.Kind]kindAccessor
	now   func() time.Time
}

func NewReportService(db *gorm.DB, baseLog *logger.Logger, r CatalogRepos, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{
		db:    db,
		log:   baseLog.With("service", "ReportService"),
		repos: r,
		kinds: newKindTable(r),
		now:   now,
	}
}

// readOnly runs fn against one consistent snapshot of the store.
func (s *reportService) readOnly(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (s *reportService) GetDashboardSummary(ctx context.Context, caller authz.Capability) (*DashboardSummary, error) {
	if err := caller.Require(authz.OpReadReports); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "ReportService.GetDashboardSummary")
	defer span.End()

	out := &DashboardSummary{Today: s.now().Format(types.DateLayout)}
	err := s.readOnly(ctx, func(dbc dbctx.Context) error {
		var (
			counts = make(map[types.Kind]int64, 4)
			err    error
		)
		if counts[types.KindProject], err = s.repos.Projects.Count(dbc); err != nil {
			return fmt.Errorf("count projects: %w", err)
		}
		if counts[types.KindArtist], err = s.repos.Artists.Count(dbc); err != nil {
			return fmt.Errorf("count artists: %w", err)
		}
		if counts[types.KindProduction], err = s.repos.Productions.Count(dbc); err != nil {
			return fmt.Errorf("count productions: %w", err)
		}
		if counts[types.KindDistributor], err = s.repos.Distributors.Count(dbc); err != nil {
			return fmt.Errorf("count distributors: %w", err)
		}
		out.Totals = counts

		artists, err := s.repos.Artists.ListAll(dbc)
		if err != nil {
			return fmt.Errorf("list artists: %w", err)
		}
		rankings, err := s.repos.Rankings.ListAll(dbc)
		if err != nil {
			return fmt.Errorf("list rankings: %w", err)
		}
		events, err := s.repos.Events.ListAll(dbc)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		current := currentRankings(rankings)
		eventsByArtist := make(map[string][]*types.CalendarEvent)
		for _, e := range events {
			eventsByArtist[e.ArtistID] = append(eventsByArtist[e.ArtistID], e)
		}
		out.Artists = make([]ArtistCard, 0, len(artists))
		for _, a := range artists {
			card := ArtistCard{Artist: a, Events: eventsByArtist[a.ID]}
			if pos, ok := current[a.ID]; ok {
				card.Ranking = &pos
			}
			if card.Events == nil {
				card.Events = []*types.CalendarEvent{}
			}
			out.Artists = append(out.Artists, card)
		}

		if out.Productions, err = s.repos.Productions.ListAll(dbc); err != nil {
			return fmt.Errorf("list productions: %w", err)
		}
		if out.Distributors, err = s.repos.Distributors.ListAll(dbc); err != nil {
			return fmt.Errorf("list distributors: %w", err)
		}

		snapshots, err := s.repos.Views.ListAll(dbc)
		if err != nil {
			return fmt.Errorf("list view snapshots: %w", err)
		}
		out.LatestViewsByProject = analytics.LatestViewsAll(snapshots)
		return nil
	})
	if err != nil {
		s.log.Error("dashboard summary failed", "error", err)
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

func (s *reportService) GetPivotDetail(ctx context.Context, caller authz.Capability, kind types.Kind, id string) (*PivotDetail, error) {
	if err := caller.Require(authz.OpReadReports); err != nil {
		return nil, err
	}
	kind, err := types.ParsePivotKind(string(kind))
	if err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "ReportService.GetPivotDetail")
	span.SetAttributes(attribute.String("pivot.kind", string(kind)), attribute.String("pivot.id", id))
	defer span.End()

	out := &PivotDetail{Kind: kind}
	err = s.readOnly(ctx, func(dbc dbctx.Context) error {
		entity, ok, err := s.kinds[kind].lookup(dbc, id)
		if err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		if !ok {
			return fmt.Errorf("%s %q: %w", kind, id, apperr.ErrNotFound)
		}
		out.Entity = entity

		collabs, err := s.repos.Collaborations.ListForPivot(dbc, kind, id)
		if err != nil {
			return fmt.Errorf("list collaborations: %w", err)
		}
		projectIDs := analytics.RelatedIDs(collabs, types.KindProject)
		projects, err := s.repos.Projects.GetByIDs(dbc, projectIDs)
		if err != nil {
			return fmt.Errorf("load related projects: %w", err)
		}
		snapshots, err := s.repos.Views.GetByProjectIDs(dbc, projectIDs)
		if err != nil {
			return fmt.Errorf("load related view snapshots: %w", err)
		}
		out.Report = analytics.BuildPivotReport(kind, id, collabs, projects, snapshots)

		if out.Collaborations, err = s.resolveCollaborations(dbc, collabs, projects); err != nil {
			return err
		}

		if kind == types.KindArtist {
			rankings, err := s.repos.Rankings.GetByArtistID(dbc, id)
			if err != nil {
				return fmt.Errorf("load rankings: %w", err)
			}
			if pos, ok := currentRankings(rankings)[id]; ok {
				out.Ranking = &pos
			}
			events, err := s.repos.Events.GetByArtistID(dbc, id)
			if err != nil {
				return fmt.Errorf("load events: %w", err)
			}
			out.Events = events
			grid := analytics.BuildMonthGrid(events, s.now())
			out.Calendar = &grid
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

func (s *reportService) resolveCollaborations(dbc dbctx.Context, collabs []*types.Collaboration, projects []*types.Project) ([]CollaborationRow, error) {
	titles := make(map[string]string, len(projects))
	for _, p := range projects {
		titles[p.ID] = p.Title
	}
	artists, err := s.repos.Artists.GetByIDs(dbc, analytics.RelatedIDs(collabs, types.KindArtist))
	if err != nil {
		return nil, fmt.Errorf("load collaborating artists: %w", err)
	}
	productions, err := s.repos.Productions.GetByIDs(dbc, analytics.RelatedIDs(collabs, types.KindProduction))
	if err != nil {
		return nil, fmt.Errorf("load collaborating productions: %w", err)
	}
	distributors, err := s.repos.Distributors.GetByIDs(dbc, analytics.RelatedIDs(collabs, types.KindDistributor))
	if err != nil {
		return nil, fmt.Errorf("load collaborating distributors: %w", err)
	}
	artistNames := make(map[string]string, len(artists))
	for _, a := range artists {
		artistNames[a.ID] = a.Name
	}
	productionNames := make(map[string]string, len(productions))
	for _, p := range productions {
		productionNames[p.ID] = p.Name
	}
	distributorNames := make(map[string]string, len(distributors))
	for _, d := range distributors {
		distributorNames[d.ID] = d.Name
	}

	out := make([]CollaborationRow, 0, len(collabs))
	for _, c := range collabs {
		out = append(out, CollaborationRow{
			ID:              c.ID,
			ProjectID:       c.ProjectID,
			ProjectTitle:    titles[c.ProjectID],
			ArtistID:        c.ArtistID,
			ArtistName:      artistNames[c.ArtistID],
			ProductionID:    c.ProductionID,
			ProductionName:  productionNames[c.ProductionID],
			DistributorID:   c.DistributorID,
			DistributorName: distributorNames[c.DistributorID],
		})
	}
	return out, nil
}

// currentRankings keeps the last position per artist; rows must be in
// ascending ranking id order.
func currentRankings(rows []*types.Ranking) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.ArtistID] = r.Position
	}
	return out
}
