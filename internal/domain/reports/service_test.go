package reports

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/domain/users"
	"pet-care-hub/internal/platform/logger"
)

type testRepo struct {
	byID map[string]Report
}

func (r *testRepo) Create(_ context.Context, rep Report) error {
	r.byID[rep.ID] = rep
	return nil
}

func (r *testRepo) Update(_ context.Context, rep Report) error {
	if _, ok := r.byID[rep.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Report, error) {
	rep, ok := r.byID[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return rep, nil
}

func (r *testRepo) List(_ context.Context, status Status) ([]Report, error) {
	out := []Report{}
	for _, rep := range r.byID {
		if status == "" || rep.Status == status {
			out = append(out, rep)
		}
	}
	return out, nil
}

type knownPosts map[string]bool

func (k knownPosts) Exists(_ context.Context, id string) (bool, error) {
	return k[id], nil
}

type recordingNotifier struct {
	sent []notifications.Input
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, in notifications.Input) (notifications.Notification, error) {
	if n.err != nil {
		return notifications.Notification{}, n.err
	}
	n.sent = append(n.sent, in)
	return notifications.Notification{}, nil
}

var (
	reporter  = posts.Actor{ID: "u-1", Name: "Ana", Role: users.RoleOwner}
	moderator = posts.Actor{ID: "u-mod", Name: "Mod", Role: users.RoleModerator}
)

func newTestService() (*Service, *recordingNotifier) {
	n := &recordingNotifier{}
	svc := NewService(&testRepo{byID: map[string]Report{}}, knownPosts{"p-1": true}, n)
	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, n
}

func TestCreate_ValidatesReasonAndPost(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, reporter, CreateInput{PostID: "p-1", Reason: "boring"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, reporter, CreateInput{PostID: "p-404", Reason: "spam"}); !errors.Is(err, posts.ErrNotFound) {
		t.Fatalf("expected posts.ErrNotFound, got %v", err)
	}

	rep, err := svc.Create(ctx, reporter, CreateInput{PostID: "p-1", Reason: " Spam ", Description: "ads"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rep.Reason != ReasonSpam || rep.Status != StatusPending || rep.ReporterID != reporter.ID {
		t.Fatalf("unexpected report: %#v", rep)
	}
}

func TestListReview_ModeratorOnly(t *testing.T) {
	svc, n := newTestService()
	ctx := context.Background()

	first, _ := svc.Create(ctx, reporter, CreateInput{PostID: "p-1", Reason: "spam"})
	svc.Create(ctx, reporter, CreateInput{PostID: "p-1", Reason: "other"})

	if _, err := svc.List(ctx, reporter, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Review(ctx, reporter, first.ID, StatusResolved); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	all, err := svc.List(ctx, moderator, "")
	if err != nil || len(all) != 2 || all[0].ID != first.ID {
		t.Fatalf("expected oldest first, got %#v err=%v", all, err)
	}

	if _, err := svc.Review(ctx, moderator, first.ID, StatusPending); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pending outcome, got %v", err)
	}
	if _, err := svc.Review(ctx, moderator, "missing", StatusDismissed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := svc.Review(ctx, moderator, first.ID, StatusResolved)
	if err != nil || got.Status != StatusResolved || got.ReviewedBy != moderator.ID || got.ReviewedAt == nil {
		t.Fatalf("unexpected reviewed report: %#v err=%v", got, err)
	}
	if len(n.sent) != 1 || n.sent[0].UserID != reporter.ID || n.sent[0].Kind != notifications.KindReportReviewed {
		t.Fatalf("expected reporter notification, got %#v", n.sent)
	}

	pending, _ := svc.List(ctx, moderator, StatusPending)
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending report, got %d", len(pending))
	}
	if _, err := svc.List(ctx, moderator, "archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestReview_NotifyFailureIsLogged(t *testing.T) {
	svc, n := newTestService()
	n.err = errors.New("inbox down")

	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf}))

	rep, _ := svc.Create(ctx, reporter, CreateInput{PostID: "p-1", Reason: "spam"})
	got, err := svc.Review(ctx, moderator, rep.ID, StatusDismissed)
	if err != nil || got.Status != StatusDismissed {
		t.Fatalf("review must succeed when the notification fails: %#v err=%v", got, err)
	}
	out := buf.String()
	if !strings.Contains(out, `"msg":"notification failed"`) || !strings.Contains(out, rep.ID) {
		t.Fatalf("expected notification failure in logs, got %q", out)
	}
}
