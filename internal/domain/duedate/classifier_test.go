package duedate

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return Day(now).AddDate(0, 0, offset)
}

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		name      string
		due       time.Time
		completed bool
		status    Status
		label     string
	}{
		{"today", day(0), false, StatusToday, "Today"},
		{"tomorrow", day(1), false, StatusUpcoming, "Tomorrow"},
		{"yesterday", day(-1), false, StatusOverdue, "Yesterday (Overdue)"},
		{"three days overdue", day(-3), false, StatusOverdue, "3 days overdue"},
		{"in two days", day(2), false, StatusUpcoming, "In 2 days"},
		{"in seven days", day(7), false, StatusUpcoming, "In 7 days"},
		{"eight days is future", day(8), false, StatusFuture, "March 18, 2026"},
		{"completed overdue", day(-30), true, StatusCompleted, "February 8, 2026"},
		{"completed today", day(0), true, StatusCompleted, "March 10, 2026"},
		{"completed future", day(40), true, StatusCompleted, "April 19, 2026"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Classify(tc.due, tc.completed, now)
			if b.Status != tc.status {
				t.Fatalf("status: want %s got %s", tc.status, b.Status)
			}
			if b.Label != tc.label {
				t.Fatalf("label: want %q got %q", tc.label, b.Label)
			}
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	lateDue := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	earlyNow := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)

	if b := Classify(lateDue, false, earlyNow); b.Status != StatusToday {
		t.Fatalf("expected today, got %s (%s)", b.Status, b.Label)
	}
}

func TestClassify_UsesNowLocationForToday(t *testing.T) {
	// 2026-03-11 02:00 UTC todavía es 2026-03-10 en Lima (UTC-5).
	lima, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	instant := time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if b := Classify(due, false, instant); b.Label != "Yesterday (Overdue)" {
		t.Fatalf("UTC: expected yesterday, got %q", b.Label)
	}
	if b := Classify(due, false, instant.In(lima)); b.Label != "Today" {
		t.Fatalf("Lima: expected today, got %q", b.Label)
	}
}

func TestClassify_TotalOverRange(t *testing.T) {
	valid := map[Status]bool{
		StatusCompleted: true, StatusToday: true, StatusUpcoming: true, StatusOverdue: true, StatusFuture: true,
	}
	for offset := -400; offset <= 400; offset++ {
		for _, completed := range []bool{false, true} {
			b := Classify(day(offset), completed, now)
			if !valid[b.Status] || b.Label == "" {
				t.Fatalf("offset %d completed=%v produced %#v", offset, completed, b)
			}
			if completed && b.Status != StatusCompleted {
				t.Fatalf("completed must always win, offset %d got %s", offset, b.Status)
			}
			if b.DaysDiff != offset {
				t.Fatalf("days diff: want %d got %d", offset, b.DaysDiff)
			}
		}
	}
}

func TestClassify_FarDates(t *testing.T) {
	cases := []struct {
		date  string
		diff  int
		label string
	}{
		{"0001-01-01", -739684, "739684 days overdue"},
		{"2500-01-01", 173057, "January 1, 2500"},
		{"9999-12-31", 2912374, "December 31, 9999"},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			due, err := ParseDate(tc.date)
			if err != nil {
				t.Fatalf("ParseDate error: %v", err)
			}
			b := Classify(due, false, now)
			if b.DaysDiff != tc.diff || b.Label != tc.label {
				t.Fatalf("want %d %q, got %d %q", tc.diff, tc.label, b.DaysDiff, b.Label)
			}
		})
	}
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	// El 8 de marzo de 2026 el día dura 23 horas en Nueva York.
	n := time.Date(2026, 3, 7, 12, 0, 0, 0, ny)
	due := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if d := DaysBetween(n, due); d != 2 {
		t.Fatalf("expected 2 days, got %d", d)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.February || d.Day() != 28 || d.Hour() != 0 {
		t.Fatalf("unexpected date %v", d)
	}
	for _, bad := range []string{"", "2026-02-30", "28/02/2026", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNowIn(t *testing.T) {
	got, err := NowIn(now, "", nil)
	if err != nil || got.Location() != time.UTC {
		t.Fatalf("expected UTC fallback, got %v err=%v", got.Location(), err)
	}
	if _, err := NowIn(now, "Mars/Olympus", nil); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
	if got, err := NowIn(now, "UTC", time.Local); err != nil || !got.Equal(now) {
		t.Fatalf("expected same instant, got %v err=%v", got, err)
	}
}
