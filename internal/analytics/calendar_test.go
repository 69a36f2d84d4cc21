package analytics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/domain/catalog"
)

func event(id string, y int, m time.Month, d int) *domain.CalendarEvent {
	e := &domain.CalendarEvent{ID: id, ArtistID: "a1"}
	if y != 0 {
		e.EventDate = catalog.NewDate(y, m, d)
	}
	return e
}

var now = time.Date(2025, time.February, 14, 12, 0, 0, 0, time.UTC)

func TestBuildMonthGridMarch2024(t *testing.T) {
	events := []*domain.CalendarEvent{
		event("e1", 2024, time.March, 20),
		event("e2", 2024, time.March, 5),
		event("e3", 2024, time.April, 2),
		event("e4", 0, 0, 0),
	}
	got := BuildMonthGrid(events, now)

	want := MonthGrid{
		Year:      2024,
		Month:     3,
		MonthName: "March",
		Weeks: [][7]int{
			{0, 0, 0, 0, 1, 2, 3},
			{4, 5, 6, 7, 8, 9, 10},
			{11, 12, 13, 14, 15, 16, 17},
			{18, 19, 20, 21, 22, 23, 24},
			{25, 26, 27, 28, 29, 30, 31},
		},
		BusyDays: []int{5, 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BuildMonthGrid mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMonthGridNoDatedEventsUsesNow(t *testing.T) {
	got := BuildMonthGrid([]*domain.CalendarEvent{event("e1", 0, 0, 0)}, now)
	if got.Year != 2025 || got.Month != 2 || got.MonthName != "February" {
		t.Fatalf("expected anchor February 2025, got %d-%d %s", got.Year, got.Month, got.MonthName)
	}
	if len(got.BusyDays) != 0 {
		t.Fatalf("expected no busy days, got %v", got.BusyDays)
	}
}

func TestBuildMonthGridSameMonthOtherYearNotBusy(t *testing.T) {
	events := []*domain.CalendarEvent{
		event("e1", 2023, time.March, 3),
		event("e2", 2024, time.March, 9),
	}
	got := BuildMonthGrid(events, now)
	if diff := cmp.Diff([]int{3}, got.BusyDays); diff != "" {
		t.Fatalf("BusyDays mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMonthGridShape(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for m := time.January; m <= time.December; m++ {
			grid := BuildMonthGrid([]*domain.CalendarEvent{event("e", year, m, 1)}, now)
			days := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()

			seen := make(map[int]int)
			for _, week := range grid.Weeks {
				for _, cell := range week {
					if cell != 0 {
						seen[cell]++
					}
				}
			}
			if len(seen) != days {
				t.Fatalf("%d-%02d: expected %d distinct days, got %d", year, m, days, len(seen))
			}
			for d, n := range seen {
				if n != 1 {
					t.Fatalf("%d-%02d: day %d appears %d times", year, m, d, n)
				}
			}
			for _, d := range grid.BusyDays {
				if d == 0 {
					t.Fatalf("%d-%02d: sentinel 0 marked busy", year, m)
				}
			}
			first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
			if col := (int(first.Weekday()) + 6) % 7; grid.Weeks[0][col] != 1 {
				t.Fatalf("%d-%02d: day 1 expected in column %d, week %v", year, m, col, grid.Weeks[0])
			}
		}
	}
}
