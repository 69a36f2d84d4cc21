package catalog

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
)

const DateLayout = "2006-01-02"

// NewDate returns a UTC calendar date.
func NewDate(year int, month time.Month, day int) *datatypes.Date {
	d := datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return &d
}

// ParseDate accepts YYYY-MM-DD; an empty string is an absent date.
func ParseDate(s string) (*datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", s, apperr.ErrInvalidArgument)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DateOf unwraps a nullable date column.
func DateOf(d *datatypes.Date) (time.Time, bool) {
	if d == nil {
		return time.Time{}, false
	}
	t := time.Time(*d)
	if t.IsZero() {
		return time.Time{}, false
	}
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), true
}

// FormatDate renders a nullable date as YYYY-MM-DD, or nil when absent.
func FormatDate(d *datatypes.Date) *string {
	t, ok := DateOf(d)
	if !ok {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
