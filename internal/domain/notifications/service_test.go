package notifications

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type testRepo struct {
	items []Notification
}

func (r *testRepo) Create(_ context.Context, n Notification) error {
	r.items = append(r.items, n)
	return nil
}

func (r *testRepo) List(_ context.Context, userID string, q ListQuery) ([]Notification, error) {
	out := []Notification{}
	for _, n := range r.items {
		if n.UserID != userID || (q.UnreadOnly && n.Read) || (q.Since != nil && !n.CreatedAt.After(*q.Since)) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *testRepo) MarkRead(_ context.Context, userID, id string) (bool, error) {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) MarkAllRead(_ context.Context, userID string) (int, error) {
	n := 0
	for i := range r.items {
		if r.items[i].UserID == userID && !r.items[i].Read {
			r.items[i].Read = true
			n++
		}
	}
	return n, nil
}

func (r *testRepo) CountUnread(_ context.Context, userID string) (int, error) {
	n := 0
	for _, it := range r.items {
		if it.UserID == userID && !it.Read {
			n++
		}
	}
	return n, nil
}

type recordingPublisher struct{ got []string }

func (p *recordingPublisher) Publish(userID string, n Notification) {
	p.got = append(p.got, userID+":"+string(n.Kind))
}

func TestNotify_PersistsAndPublishes(t *testing.T) {
	repo := &testRepo{}
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }
	ctx := context.Background()

	if _, err := svc.Notify(ctx, Input{UserID: "u1", Kind: KindPostLiked, PostID: "p1", Message: "Ana liked your post"}); err != nil {
		t.Fatalf("Notify error: %v", err)
	}
	second, _ := svc.Notify(ctx, Input{UserID: "u1", Kind: KindPostCommented, PostID: "p1", Message: "Ana commented"})
	_, _ = svc.Notify(ctx, Input{UserID: "u2", Kind: KindPostLiked, Message: "x"})

	if len(pub.got) != 3 || pub.got[0] != "u1:post_liked" {
		t.Fatalf("unexpected publications: %#v", pub.got)
	}

	items, _ := svc.List(ctx, "u1", ListQuery{})
	if len(items) != 2 || items[0].ID != second.ID {
		t.Fatalf("expected newest first, got %#v", items)
	}

	if _, err := svc.Notify(ctx, Input{UserID: "u1", Kind: "spam", Message: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMarkRead(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil)
	ctx := context.Background()

	n1, _ := svc.Notify(ctx, Input{UserID: "u1", Kind: KindPostLiked, Message: "a"})
	_, _ = svc.Notify(ctx, Input{UserID: "u1", Kind: KindPostLiked, Message: "b"})

	if err := svc.MarkRead(ctx, "u1", n1.ID); err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if c, _ := svc.UnreadCount(ctx, "u1"); c != 1 {
		t.Fatalf("expected 1 unread, got %d", c)
	}
	if err := svc.MarkRead(ctx, "u2", n1.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}

	marked, _ := svc.MarkAllRead(ctx, "u1")
	if marked != 1 {
		t.Fatalf("expected 1 marked, got %d", marked)
	}
	if items, _ := svc.List(ctx, "u1", ListQuery{UnreadOnly: true}); len(items) != 0 {
		t.Fatalf("expected no unread, got %d", len(items))
	}
}
