// Package storagetest tiene las pruebas compartidas por todos los backends de storage.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/domain/reminders"
	"pet-care-hub/internal/domain/reports"
	"pet-care-hub/internal/domain/users"
)

// Repos agrupa los repositorios de un backend. Todos deben compartir el mismo storage.
type Repos struct {
	Users         users.Repository
	Pets          pets.Repository
	Reminders     reminders.Repository
	Posts         posts.Repository
	Reports       reports.Repository
	Notifications notifications.Repository
}

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// Run ejecuta la batería completa; newRepos debe devolver un storage vacío en cada llamada.
func Run(t *testing.T, newRepos func(t *testing.T) Repos) {
	t.Run("users", func(t *testing.T) { testUsers(t, newRepos(t)) })
	t.Run("pet cascade", func(t *testing.T) { testPetCascade(t, newRepos(t)) })
	t.Run("reminders", func(t *testing.T) { testReminders(t, newRepos(t)) })
	t.Run("posts", func(t *testing.T) { testPosts(t, newRepos(t)) })
	t.Run("reports", func(t *testing.T) { testReports(t, newRepos(t)) })
	t.Run("notifications", func(t *testing.T) { testNotifications(t, newRepos(t)) })
}

func testUsers(t *testing.T, r Repos) {
	ctx := context.Background()
	u := users.User{ID: "u1", DisplayName: "Ana", Email: "ana@example.com", Role: users.RoleOwner, CreatedAt: base, UpdatedAt: base}
	if err := r.Users.Create(ctx, u); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	dup := u
	dup.ID = "u2"
	if err := r.Users.Create(ctx, dup); !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := r.Users.GetByEmail(ctx, "ANA@example.com")
	if err != nil || got.ID != "u1" {
		t.Fatalf("GetByEmail: got %#v err=%v", got, err)
	}

	u.Role = users.RoleAdmin
	u.Bio = "cats"
	if err := r.Users.Update(ctx, u); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ = r.Users.GetByID(ctx, "u1")
	if got.Role != users.RoleAdmin || got.Bio != "cats" {
		t.Fatalf("update not persisted: %#v", got)
	}

	if _, err := r.Users.GetByID(ctx, "missing"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected users.ErrNotFound, got %v", err)
	}
}

func seedPet(t *testing.T, r Repos, id, owner string, at time.Time) pets.Pet {
	t.Helper()
	p := pets.Pet{ID: id, OwnerUserID: owner, Name: "Pet " + id, Type: pets.TypeDog, Breed: "Mixed", Age: 2, Weight: 10.5, CreatedAt: at, UpdatedAt: at}
	if err := r.Pets.Create(context.Background(), p); err != nil {
		t.Fatalf("create pet %s: %v", id, err)
	}
	return p
}

func seedReminder(t *testing.T, r Repos, id, owner, petID string, date time.Time) reminders.Reminder {
	t.Helper()
	rem := reminders.Reminder{
		ID: id, OwnerUserID: owner, PetID: petID, Title: "Reminder " + id, Date: date,
		Type: reminders.TypeVaccination, Recurrence: reminders.RecurrenceNone, CreatedAt: base, UpdatedAt: base,
	}
	if err := r.Reminders.Create(context.Background(), rem); err != nil {
		t.Fatalf("create reminder %s: %v", id, err)
	}
	return rem
}

func testPetCascade(t *testing.T, r Repos) {
	ctx := context.Background()
	seedPet(t, r, "p1", "u1", base)
	seedPet(t, r, "p2", "u1", base.Add(time.Minute))
	seedReminder(t, r, "r1", "u1", "p1", base)
	seedReminder(t, r, "r2", "u1", "p1", base.AddDate(0, 0, 1))
	seedReminder(t, r, "r3", "u1", "p2", base)

	list, err := r.Pets.ListByOwner(ctx, "u1")
	if err != nil || len(list) != 2 || list[0].ID != "p1" {
		t.Fatalf("ListByOwner: %#v err=%v", list, err)
	}

	// Otro owner no puede borrar.
	if deleted, err := r.Pets.DeleteCascade(ctx, "u2", "p1"); err != nil || deleted {
		t.Fatalf("foreign delete must be a no-op, deleted=%v err=%v", deleted, err)
	}

	deleted, err := r.Pets.DeleteCascade(ctx, "u1", "p1")
	if err != nil || !deleted {
		t.Fatalf("DeleteCascade: deleted=%v err=%v", deleted, err)
	}
	if _, err := r.Pets.GetByID(ctx, "p1"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}

	left, _ := r.Reminders.ListByOwner(ctx, "u1")
	if len(left) != 1 || left[0].ID != "r3" {
		t.Fatalf("expected only r3 to survive, got %#v", left)
	}

	if deleted, err := r.Pets.DeleteCascade(ctx, "u1", "p1"); err != nil || deleted {
		t.Fatalf("second delete must report deleted=false, got %v err=%v", deleted, err)
	}

	// Un recordatorio que llega después de la cascada no puede quedar huérfano.
	late := reminders.Reminder{
		ID: "r-late", OwnerUserID: "u1", PetID: "p1", Title: "late", Date: base,
		Type: reminders.TypeOther, Recurrence: reminders.RecurrenceNone, CreatedAt: base, UpdatedAt: base,
	}
	if err := r.Reminders.Create(ctx, late); !errors.Is(err, reminders.ErrNotFound) {
		t.Fatalf("expected reminders.ErrNotFound for a deleted pet, got %v", err)
	}
	if _, err := r.Reminders.GetByID(ctx, "r-late"); !errors.Is(err, reminders.ErrNotFound) {
		t.Fatalf("orphan reminder was stored: %v", err)
	}
}

func testReminders(t *testing.T, r Repos) {
	ctx := context.Background()
	seedPet(t, r, "p1", "u1", base)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	rem := seedReminder(t, r, "r1", "u1", "p1", date)

	got, err := r.Reminders.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if !got.Date.Equal(date) || got.Completed || got.CompletedAt != nil {
		t.Fatalf("unexpected reminder: %#v", got)
	}

	done := base.Add(2 * time.Hour)
	rem.Completed = true
	rem.CompletedAt = &done
	rem.Notes = "done at the vet"
	if err := r.Reminders.Update(ctx, rem); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ = r.Reminders.GetByID(ctx, "r1")
	if !got.Completed || got.CompletedAt == nil || !got.CompletedAt.Equal(done) || got.Notes != "done at the vet" {
		t.Fatalf("update not persisted: %#v", got)
	}

	if deleted, _ := r.Reminders.Delete(ctx, "u2", "r1"); deleted {
		t.Fatalf("foreign delete must be a no-op")
	}
	if deleted, err := r.Reminders.Delete(ctx, "u1", "r1"); err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	if _, err := r.Reminders.GetByID(ctx, "r1"); !errors.Is(err, reminders.ErrNotFound) {
		t.Fatalf("expected reminders.ErrNotFound, got %v", err)
	}
}

func testPosts(t *testing.T, r Repos) {
	ctx := context.Background()
	p := posts.Post{
		ID: "post1", AuthorID: "u1", AuthorName: "Ana", Title: "Hi", Content: "Hello",
		Category: posts.CategoryGeneral, Status: posts.StatusApproved, CreatedAt: base, UpdatedAt: base,
	}
	if err := r.Posts.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := r.Posts.IncrementLikes(ctx, "post1", 1); err != nil {
		t.Fatalf("IncrementLikes error: %v", err)
	}
	r.Posts.IncrementLikes(ctx, "post1", 1)
	r.Posts.IncrementViews(ctx, "post1")

	if added, _ := r.Posts.AddLike(ctx, "post1", "u2"); !added {
		t.Fatalf("first AddLike must add")
	}
	if added, _ := r.Posts.AddLike(ctx, "post1", "u2"); added {
		t.Fatalf("second AddLike must be a no-op")
	}
	if removed, _ := r.Posts.RemoveLike(ctx, "post1", "u2"); !removed {
		t.Fatalf("RemoveLike must remove")
	}

	for i, text := range []string{"first", "second", "third"} {
		c := posts.Comment{ID: "c" + text, PostID: "post1", AuthorID: "u2", AuthorName: "Bob", Text: text, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := r.Posts.AddComment(ctx, c); err != nil {
			t.Fatalf("AddComment error: %v", err)
		}
	}
	if deleted, _ := r.Posts.DeleteComment(ctx, "post1", "csecond"); !deleted {
		t.Fatalf("DeleteComment must delete")
	}

	p.Title = "Hi again"
	p.Status = posts.StatusRejected
	if err := r.Posts.Update(ctx, p); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := r.Posts.GetByID(ctx, "post1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Likes != 2 || got.Views != 1 || got.Title != "Hi again" || got.Status != posts.StatusRejected {
		t.Fatalf("unexpected post: %#v", got)
	}
	if len(got.Comments) != 2 || got.Comments[0].Text != "first" || got.Comments[1].Text != "third" {
		t.Fatalf("comments must keep insertion order: %#v", got.Comments)
	}

	all, _ := r.Posts.List(ctx)
	if len(all) != 1 || len(all[0].Comments) != 2 {
		t.Fatalf("List must include comments: %#v", all)
	}

	if deleted, err := r.Posts.Delete(ctx, "post1"); err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	if _, err := r.Posts.GetByID(ctx, "post1"); !errors.Is(err, posts.ErrNotFound) {
		t.Fatalf("expected posts.ErrNotFound, got %v", err)
	}
	if deleted, _ := r.Posts.Delete(ctx, "post1"); deleted {
		t.Fatalf("second delete must report false")
	}
}

func testReports(t *testing.T, r Repos) {
	ctx := context.Background()
	rep := reports.Report{ID: "rep1", PostID: "post1", ReporterID: "u1", Reason: reports.ReasonSpam, Status: reports.StatusPending, CreatedAt: base}
	if err := r.Reports.Create(ctx, rep); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	r.Reports.Create(ctx, reports.Report{ID: "rep2", PostID: "post1", ReporterID: "u2", Reason: reports.ReasonOther, Status: reports.StatusPending, CreatedAt: base})

	at := base.Add(time.Hour)
	rep.Status = reports.StatusResolved
	rep.ReviewedBy = "mod"
	rep.ReviewedAt = &at
	if err := r.Reports.Update(ctx, rep); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, _ := r.Reports.GetByID(ctx, "rep1")
	if got.Status != reports.StatusResolved || got.ReviewedAt == nil || !got.ReviewedAt.Equal(at) {
		t.Fatalf("unexpected report: %#v", got)
	}
	pending, _ := r.Reports.List(ctx, reports.StatusPending)
	if len(pending) != 1 || pending[0].ID != "rep2" {
		t.Fatalf("unexpected pending list: %#v", pending)
	}
	all, _ := r.Reports.List(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(all))
	}
	if _, err := r.Reports.GetByID(ctx, "missing"); !errors.Is(err, reports.ErrNotFound) {
		t.Fatalf("expected reports.ErrNotFound, got %v", err)
	}
}

func testNotifications(t *testing.T, r Repos) {
	ctx := context.Background()
	for i, id := range []string{"n1", "n2", "n3"} {
		n := notifications.Notification{ID: id, UserID: "u1", Kind: notifications.KindPostLiked, Message: "liked", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := r.Notifications.Create(ctx, n); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	r.Notifications.Create(ctx, notifications.Notification{ID: "other", UserID: "u2", Kind: notifications.KindPostLiked, Message: "x", CreatedAt: base})

	list, _ := r.Notifications.List(ctx, "u1", notifications.ListQuery{Limit: 10})
	if len(list) != 3 || list[0].ID != "n3" {
		t.Fatalf("expected newest first, got %#v", list)
	}

	since := base
	list, _ = r.Notifications.List(ctx, "u1", notifications.ListQuery{Since: &since, Limit: 10})
	if len(list) != 2 {
		t.Fatalf("since must be exclusive, got %d", len(list))
	}

	if ok, _ := r.Notifications.MarkRead(ctx, "u2", "n1"); ok {
		t.Fatalf("cannot mark another user's notification")
	}
	if ok, _ := r.Notifications.MarkRead(ctx, "u1", "n1"); !ok {
		t.Fatalf("MarkRead must succeed")
	}
	if n, _ := r.Notifications.CountUnread(ctx, "u1"); n != 2 {
		t.Fatalf("expected 2 unread, got %d", n)
	}
	unread, _ := r.Notifications.List(ctx, "u1", notifications.ListQuery{UnreadOnly: true, Limit: 10})
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread items, got %d", len(unread))
	}
	if n, _ := r.Notifications.MarkAllRead(ctx, "u1"); n != 2 {
		t.Fatalf("expected 2 marked, got %d", n)
	}
	if n, _ := r.Notifications.CountUnread(ctx, "u1"); n != 0 {
		t.Fatalf("expected 0 unread, got %d", n)
	}
}
