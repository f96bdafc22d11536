package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/platform/validate"
)

var (
	ErrInvalidInput = validate.ErrInvalid
	ErrNotFound     = errors.New("report not found")
	ErrForbidden    = errors.New("forbidden")
)

type PostChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, in notifications.Input) (notifications.Notification, error)
}

type Service struct {
	repo     Repository
	posts    PostChecker
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, posts PostChecker, notifier Notifier) *Service {
	return &Service{repo: repo, posts: posts, notifier: notifier, now: time.Now}
}

type CreateInput struct {
	PostID      string
	Reason      string
	Description string
}

func (s *Service) Create(ctx context.Context, actor posts.Actor, in CreateInput) (Report, error) {
	reason := Reason(strings.ToLower(strings.TrimSpace(in.Reason)))

	errs := validate.Errors{}
	validate.Required(errs, "post_id", in.PostID)
	validate.OneOf(errs, "reason", reason, reasons...)
	validate.MaxLen(errs, "description", in.Description, 2000)
	if err := errs.Err(); err != nil {
		return Report{}, err
	}

	ok, err := s.posts.Exists(ctx, in.PostID)
	if err != nil {
		return Report{}, err
	}
	if !ok {
		return Report{}, posts.ErrNotFound
	}

	rep := Report{
		ID:          uuid.NewString(),
		PostID:      in.PostID,
		ReporterID:  actor.ID,
		Reason:      reason,
		Description: strings.TrimSpace(in.Description),
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// List: solo moderator/admin. Más antiguos primero (orden de la cola).
func (s *Service) List(ctx context.Context, actor posts.Actor, status Status) ([]Report, error) {
	if !actor.Role.CanModerate() {
		return nil, ErrForbidden
	}
	if status != "" {
		errs := validate.Errors{}
		validate.OneOf(errs, "status", status, StatusPending, StatusResolved, StatusDismissed)
		if err := errs.Err(); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

// Review cierra el reporte y avisa a quien lo hizo.
func (s *Service) Review(ctx context.Context, actor posts.Actor, id string, outcome Status) (Report, error) {
	if !actor.Role.CanModerate() {
		return Report{}, ErrForbidden
	}

	errs := validate.Errors{}
	validate.OneOf(errs, "status", outcome, StatusResolved, StatusDismissed)
	if err := errs.Err(); err != nil {
		return Report{}, err
	}

	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Report{}, err
	}

	now := s.now()
	rep.Status = outcome
	rep.ReviewedBy = actor.ID
	rep.ReviewedAt = &now
	if err := s.repo.Update(ctx, rep); err != nil {
		return Report{}, err
	}

	if s.notifier != nil {
		_, err := s.notifier.Notify(ctx, notifications.Input{
			UserID:  rep.ReporterID,
			Kind:    notifications.KindReportReviewed,
			PostID:  rep.PostID,
			Message: fmt.Sprintf("Your report was %s", outcome),
		})
		if err != nil {
			logger.FromContext(ctx, nil).Warn("notification failed", map[string]any{
				"kind":      string(notifications.KindReportReviewed),
				"report_id": rep.ID,
				"error":     err.Error(),
			})
		}
	}
	return rep, nil
}
