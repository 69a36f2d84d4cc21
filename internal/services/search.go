package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/domain/catalog"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

const SearchLimitPerKind = 5

type SearchService interface {
	Search(ctx context.Context, caller authz.Capability, query string) ([]SearchMatch, error)
}

type searchService struct {
	db    *gorm.DB
	log   *logger.Logger
	kinds map[types.Kind]kindAccessor
}

func NewSearchService(db *gorm.DB, baseLog *logger.Logger, r CatalogRepos) SearchService {
	return &searchService{
		db:    db,
		log:   baseLog.With("service", "SearchService"),
		kinds: newKindTable(r),
	}
}

// Search looks the query up in each named kind independently and concatenates
// the hits as artists, projects, productions, distributors.
func (s *searchService) Search(ctx context.Context, caller authz.Capability, query string) ([]SearchMatch, error) {
	if err := caller.Require(authz.OpReadReports); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchMatch{}, nil
	}
	ctx, span := tracer.Start(ctx, "SearchService.Search")
	span.SetAttributes(attribute.Int("search.query_len", len(query)))
	defer span.End()

	perKind := make([][]SearchMatch, len(catalog.SearchOrder))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range catalog.SearchOrder {
		g.Go(func() error {
			hits, err := s.kinds[kind].search(dbctx.Context{Ctx: gctx}, query, SearchLimitPerKind)
			if err != nil {
				return fmt.Errorf("search %s: %w", kind, err)
			}
			perKind[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("search failed", "error", err)
		span.RecordError(err)
		return nil, err
	}

	out := make([]SearchMatch, 0, len(catalog.SearchOrder)*SearchLimitPerKind)
	for _, hits := range perKind {
		out = append(out, hits...)
	}
	return out, nil
}
