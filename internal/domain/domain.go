// Package domain re-exports the persisted catalog and account types so callers can
// import a single package.
package domain

import (
	"github.com/yungbote/artistdash-backend/internal/domain/catalog"
	"github.com/yungbote/artistdash-backend/internal/domain/user"
)

type (
	Kind          = catalog.Kind
	Project       = catalog.Project
	Artist        = catalog.Artist
	Production    = catalog.Production
	Distributor   = catalog.Distributor
	Collaboration = catalog.Collaboration
	ViewSnapshot  = catalog.ViewSnapshot
	Ranking       = catalog.Ranking
	CalendarEvent = catalog.CalendarEvent
	User          = user.User
)

const (
	KindArtist      = catalog.KindArtist
	KindProject     = catalog.KindProject
	KindProduction  = catalog.KindProduction
	KindDistributor = catalog.KindDistributor
)

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&catalog.Project{},
		&catalog.Artist{},
		&catalog.Production{},
		&catalog.Distributor{},
		&catalog.Collaboration{},
		&catalog.ViewSnapshot{},
		&catalog.Ranking{},
		&catalog.CalendarEvent{},
		&user.User{},
	}
}

const DateLayout = catalog.DateLayout

var (
	ParseKind      = catalog.ParseKind
	ParsePivotKind = catalog.ParsePivotKind
	ParseDate      = catalog.ParseDate
	FormatDate     = catalog.FormatDate
)
