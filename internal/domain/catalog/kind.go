package catalog

import (
	"fmt"
	"strings"

	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
)

// Kind names one of the four named catalog entities.
type Kind string

const (
	KindArtist      Kind = "artist"
	KindProject     Kind = "project"
	KindProduction  Kind = "production"
	KindDistributor Kind = "distributor"
)

// SearchOrder is the fixed order in which search results are concatenated.
var SearchOrder = []Kind{KindArtist, KindProject, KindProduction, KindDistributor}

// PivotKinds are the kinds a detail report can be computed for.
var PivotKinds = []Kind{KindArtist, KindProduction, KindDistributor}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindArtist, KindProject, KindProduction, KindDistributor:
		return k, nil
	}
	return "", fmt.Errorf("unknown entity kind %q: %w", s, apperr.ErrInvalidArgument)
}

func ParsePivotKind(s string) (Kind, error) {
	k, err := ParseKind(s)
	if err != nil {
		return "", err
	}
	if !k.IsPivot() {
		return "", fmt.Errorf("kind %q has no detail report: %w", s, apperr.ErrInvalidArgument)
	}
	return k, nil
}

func (k Kind) IsPivot() bool {
	return k == KindArtist || k == KindProduction || k == KindDistributor
}

// Column is the collaborations column holding ids of this kind.
func (k Kind) Column() string {
	return string(k) + "_id"
}

// Others returns the pivot kinds other than k, in a stable order.
func (k Kind) Others() []Kind {
	out := make([]Kind, 0, 2)
	for _, o := range PivotKinds {
		if o != k {
			out = append(out, o)
		}
	}
	return out
}
