package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

// Events come back ordered by date with undated rows last, then by id.
const eventOrder = "event_date IS NULL, event_date, event_id"

type CalendarEventRepo interface {
	Create(dbc dbctx.Context, rows []*types.CalendarEvent) ([]*types.CalendarEvent, error)
	ListAll(dbc dbctx.Context) ([]*types.CalendarEvent, error)
	GetByArtistID(dbc dbctx.Context, artistID string) ([]*types.CalendarEvent, error)
}

type calendarEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCalendarEventRepo(db *gorm.DB, baseLog *logger.Logger) CalendarEventRepo {
	return &calendarEventRepo{db: db, log: baseLog.With("repo", "CalendarEventRepo")}
}

func (r *calendarEventRepo) Create(dbc dbctx.Context, rows []*types.CalendarEvent) ([]*types.CalendarEvent, error) {
	return createRows(dbc, r.db, rows)
}

func (r *calendarEventRepo) ListAll(dbc dbctx.Context) ([]*types.CalendarEvent, error) {
	return listAll[types.CalendarEvent](dbc, r.db, eventOrder)
}

func (r *calendarEventRepo) GetByArtistID(dbc dbctx.Context, artistID string) ([]*types.CalendarEvent, error) {
	return listWhereIn[types.CalendarEvent](dbc, r.db, "artist_id", []string{artistID}, eventOrder)
}
