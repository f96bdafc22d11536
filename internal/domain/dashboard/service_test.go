package dashboard

import (
	"context"
	"testing"
	"time"

	"pet-care-hub/internal/domain/duedate"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/reminders"
)

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return duedate.Day(now).AddDate(0, 0, offset)
}

type fakePets []pets.Pet

func (f fakePets) ListByOwner(context.Context, string) ([]pets.Pet, error) { return f, nil }

type fakeReminders []reminders.Reminder

func (f fakeReminders) List(context.Context, string, reminders.ListFilter, time.Time) ([]reminders.Reminder, error) {
	return f, nil
}

func (f fakeReminders) Streak(_ context.Context, _ string, n time.Time) (int, error) {
	days := []time.Time{}
	for _, r := range f {
		if r.CompletedAt != nil {
			days = append(days, *r.CompletedAt)
		}
	}
	return duedate.Streak(days, n), nil
}

func (f fakeReminders) Now() time.Time { return now }

type fixedCount int

func (c fixedCount) UnreadCount(context.Context, string) (int, error)   { return int(c), nil }
func (c fixedCount) CountByAuthor(context.Context, string) (int, error) { return int(c), nil }

func fixture() (fakePets, fakeReminders) {
	doneAt := now.Add(-time.Hour)
	p := fakePets{{ID: "p1", Name: "Max"}, {ID: "p2", Name: "Luna"}}
	r := fakeReminders{
		{ID: "r1", PetID: "p1", Title: "Old vaccine", Date: day(-3)},
		{ID: "r2", PetID: "p1", Title: "Pill", Date: day(0)},
		{ID: "r3", PetID: "p2", Title: "Groom", Date: day(0), Completed: true, CompletedAt: &doneAt},
		{ID: "r4", PetID: "p2", Title: "Vet", Date: day(2)},
		{ID: "r5", PetID: "p2", Title: "Checkup", Date: day(30)},
	}
	return p, r
}

func TestDashboard_Aggregates(t *testing.T) {
	p, r := fixture()
	svc := NewService(p, r, fixedCount(4), nil)

	d, err := svc.Dashboard(context.Background(), "u1", now, 0)
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if d.PetCount != 2 || d.OverdueCount != 1 || d.DueTodayCount != 1 || d.CompletedCount != 1 {
		t.Fatalf("unexpected counts: %#v", d)
	}
	if d.Streak != 1 || d.UnreadNotifications != 4 {
		t.Fatalf("unexpected streak/unread: %#v", d)
	}
	if len(d.Upcoming) != 4 || d.Upcoming[0].ID != "r1" || d.Upcoming[0].Due.Status != duedate.StatusOverdue {
		t.Fatalf("unexpected upcoming: %#v", d.Upcoming)
	}
	if d.Upcoming[2].PetName != "Luna" || d.Upcoming[2].Due.Label != "In 2 days" {
		t.Fatalf("expected enriched view, got %#v", d.Upcoming[2])
	}
}

func TestDashboard_LimitsUpcoming(t *testing.T) {
	p, r := fixture()
	svc := NewService(p, r, nil, nil)

	d, err := svc.Dashboard(context.Background(), "u1", now, 2)
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if len(d.Upcoming) != 2 || d.OverdueCount != 1 || d.UnreadNotifications != 0 {
		t.Fatalf("limit must only trim the list: %#v", d)
	}
}

func TestStats(t *testing.T) {
	p, r := fixture()
	svc := NewService(p, r, nil, fixedCount(3))

	st, err := svc.Stats(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	want := Stats{Pets: 2, RemindersTotal: 5, RemindersCompleted: 1, Streak: 1, Posts: 3}
	if st != want {
		t.Fatalf("want %#v got %#v", want, st)
	}
}
