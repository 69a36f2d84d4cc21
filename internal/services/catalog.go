package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	dbpkg "github.com/yungbote/artistdash-backend/internal/data/db"
	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
	"github.com/yungbote/artistdash-backend/internal/pkg/pointers"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type ArtistInput struct {
	ArtistID      string  `json:"artist_id"`
	Name          string  `json:"name"`
	PhotoURL      string  `json:"photo_url"`
	LastProjectID *string `json:"last_project_id"`
}

type ProjectInput struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	SongLink    string `json:"song_link"`
	AlbumArt    string `json:"album_art"`
	ReleaseDate string `json:"release_date"`
}

type ProductionInput struct {
	ProductionID  string  `json:"production_id"`
	Name          string  `json:"name"`
	LogoURL       string  `json:"logo_url"`
	MarketValue   *int64  `json:"market_value"`
	LastProjectID *string `json:"last_project_id"`
}

type DistributorInput struct {
	DistributorID string `json:"distributor_id"`
	Name          string `json:"name"`
	LogoURL       string `json:"logo_url"`
	URL           string `json:"url"`
	MarketValue   *int64 `json:"market_value"`
}

type CatalogService interface {
	// Insert creates one row of kind from its JSON payload and returns it.
	Insert(ctx context.Context, caller authz.Capability, kind types.Kind, payload json.RawMessage) (any, error)
	Delete(ctx context.Context, caller authz.Capability, kind types.Kind, id string) error
}

type catalogService struct {
	db    *gorm.DB
	log   *logger.Logger
	repos CatalogRepos
	kinds map[types.Kind]kindAccessor
}

func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, r CatalogRepos) CatalogService {
	return &catalogService{
		db:    db,
		log:   baseLog.With("service", "CatalogService"),
		repos: r,
		kinds: newKindTable(r),
	}
}

func (s *catalogService) Insert(ctx context.Context, caller authz.Capability, kind types.Kind, payload json.RawMessage) (any, error) {
	if err := caller.Require(authz.OpInsert); err != nil {
		return nil, err
	}
	kind, err := types.ParseKind(string(kind))
	if err != nil {
		return nil, err
	}
	row, id, lastProjectID, err := decodeInsert(kind, payload)
	if err != nil {
		return nil, err
	}
	acc := s.kinds[kind]

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, exists, err := acc.lookup(dbc, id); err != nil {
			return fmt.Errorf("check %s %q: %w", kind, id, err)
		} else if exists {
			return fmt.Errorf("%s %q already exists: %w", kind, id, apperr.ErrConflict)
		}
		if lastProjectID != "" {
			p, err := s.repos.Projects.GetByID(dbc, lastProjectID)
			if err != nil {
				return fmt.Errorf("check last project: %w", err)
			}
			if p == nil {
				return fmt.Errorf("last_project_id %q does not exist: %w", lastProjectID, apperr.ErrInvalidArgument)
			}
		}
		if err := acc.create(dbc, row); err != nil {
			return fmt.Errorf("insert %s: %w", kind, dbpkg.TranslateError(err))
		}
		return nil
	})
	if err != nil {
		s.log.Warn("catalog insert failed", "kind", kind, "id", id, "user_id", caller.UserID, "error", err)
		return nil, err
	}
	s.log.Info("catalog row inserted", "kind", kind, "id", id, "user_id", caller.UserID)
	return row, nil
}

func (s *catalogService) Delete(ctx context.Context, caller authz.Capability, kind types.Kind, id string) error {
	if err := caller.Require(authz.OpDelete); err != nil {
		return err
	}
	kind, err := types.ParseKind(string(kind))
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id is required: %w", apperr.ErrInvalidArgument)
	}
	acc := s.kinds[kind]

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, exists, err := acc.lookup(dbc, id); err != nil {
			return fmt.Errorf("load %s %q: %w", kind, id, err)
		} else if !exists {
			return fmt.Errorf("%s %q: %w", kind, id, apperr.ErrNotFound)
		}
		refs, err := s.repos.Collaborations.CountReferencing(dbc, kind, id)
		if err != nil {
			return fmt.Errorf("count collaborations: %w", err)
		}
		deps, err := acc.dependents(dbc, id)
		if err != nil {
			return fmt.Errorf("count dependents: %w", err)
		}
		if refs > 0 || deps > 0 {
			return fmt.Errorf("%s %q is still referenced by %d collaborations and %d other rows: %w",
				kind, id, refs, deps, apperr.ErrConflict)
		}
		if _, err := acc.remove(dbc, id); err != nil {
			return fmt.Errorf("delete %s: %w", kind, dbpkg.TranslateError(err))
		}
		return nil
	})
	if err != nil {
		s.log.Warn("catalog delete failed", "kind", kind, "id", id, "user_id", caller.UserID, "error", err)
		return err
	}
	s.log.Info("catalog row deleted", "kind", kind, "id", id, "user_id", caller.UserID)
	return nil
}

// decodeInsert maps a payload onto the model for kind and returns the row, its
// id and the optional last project it points at.
func decodeInsert(kind types.Kind, payload json.RawMessage) (row any, id string, lastProjectID string, err error) {
	if len(payload) == 0 {
		return nil, "", "", fmt.Errorf("data is required: %w", apperr.ErrInvalidArgument)
	}
	switch kind {
	case types.KindArtist:
		var in ArtistInput
		if err := decodePayload(payload, &in); err != nil {
			return nil, "", "", err
		}
		if err := requireFields("artist_id", in.ArtistID, "name", in.Name); err != nil {
			return nil, "", "", err
		}
		lp := trimmedOrNil(in.LastProjectID)
		return &types.Artist{
			ID:            strings.TrimSpace(in.ArtistID),
			Name:          strings.TrimSpace(in.Name),
			PhotoURL:      in.PhotoURL,
			LastProjectID: lp,
		}, strings.TrimSpace(in.ArtistID), pointers.StringOrEmpty(lp), nil

	case types.KindProject:
		var in ProjectInput
		if err := decodePayload(payload, &in); err != nil {
			return nil, "", "", err
		}
		if err := requireFields("project_id", in.ProjectID); err != nil {
			return nil, "", "", err
		}
		release, err := types.ParseDate(in.ReleaseDate)
		if err != nil {
			return nil, "", "", fmt.Errorf("release_date: %w", err)
		}
		return &types.Project{
			ID:          strings.TrimSpace(in.ProjectID),
			Title:       strings.TrimSpace(in.Title),
			Type:        in.Type,
			Description: in.Description,
			SongLink:    in.SongLink,
			AlbumArt:    in.AlbumArt,
			ReleaseDate: release,
		}, strings.TrimSpace(in.ProjectID), "", nil

	case types.KindProduction:
		var in ProductionInput
		if err := decodePayload(payload, &in); err != nil {
			return nil, "", "", err
		}
		if err := requireFields("production_id", in.ProductionID, "name", in.Name); err != nil {
			return nil, "", "", err
		}
		lp := trimmedOrNil(in.LastProjectID)
		return &types.Production{
			ID:            strings.TrimSpace(in.ProductionID),
			Name:          strings.TrimSpace(in.Name),
			LogoURL:       in.LogoURL,
			MarketValue:   in.MarketValue,
			LastProjectID: lp,
		}, strings.TrimSpace(in.ProductionID), pointers.StringOrEmpty(lp), nil

	case types.KindDistributor:
		var in DistributorInput
		if err := decodePayload(payload, &in); err != nil {
			return nil, "", "", err
		}
		if err := requireFields("distributor_id", in.DistributorID, "name", in.Name); err != nil {
			return nil, "", "", err
		}
		return &types.Distributor{
			ID:          strings.TrimSpace(in.DistributorID),
			Name:        strings.TrimSpace(in.Name),
			LogoURL:     in.LogoURL,
			URL:         in.URL,
			MarketValue: in.MarketValue,
		}, strings.TrimSpace(in.DistributorID), "", nil
	}
	return nil, "", "", fmt.Errorf("unknown entity kind %q: %w", kind, apperr.ErrInvalidArgument)
}

func decodePayload(payload json.RawMessage, dst any) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode data: %v: %w", err, apperr.ErrInvalidArgument)
	}
	return nil
}

// requireFields takes name/value pairs and rejects the first blank value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%s is required: %w", pairs[i], apperr.ErrInvalidArgument)
		}
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
