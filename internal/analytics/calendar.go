package analytics

import (
	"sort"
	"time"

	"github.com/yungbote/artistdash-backend/internal/domain"
)

// MonthGrid is a Monday-first month view. Cells outside the month hold 0.
type MonthGrid struct {
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	MonthName string   `json:"month_name"`
	Weeks     [][7]int `json:"weeks"`
	BusyDays  []int    `json:"busy_days"`
}

// BuildMonthGrid anchors on the month of the earliest dated event, or on now
// when no event has a date. Only events inside the anchored month and year
// mark busy days; later months are not rendered.
func BuildMonthGrid(events []*domain.CalendarEvent, now time.Time) MonthGrid {
	var (
		anchor time.Time
		dated  []time.Time
	)
	for _, e := range events {
		if e == nil {
			continue
		}
		t, ok := dateKey(e.EventDate)
		if !ok {
			continue
		}
		dated = append(dated, t)
		if anchor.IsZero() || t.Before(anchor) {
			anchor = t
		}
	}
	if anchor.IsZero() {
		anchor = now
	}
	year, month := anchor.Year(), anchor.Month()

	busy := make(map[int]struct{})
	for _, t := range dated {
		if t.Year() == year && t.Month() == month {
			busy[t.Day()] = struct{}{}
		}
	}
	busyDays := make([]int, 0, len(busy))
	for d := range busy {
		busyDays = append(busyDays, d)
	}
	sort.Ints(busyDays)

	return MonthGrid{
		Year:      year,
		Month:     int(month),
		MonthName: month.String(),
		Weeks:     monthWeeks(year, month),
		BusyDays:  busyDays,
	}
}

func monthWeeks(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7 // Monday = 0

	weeks := make([][7]int, 0, 6)
	var week [7]int
	col := lead
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
