package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-hub/internal/platform/validate"
)

var (
	ErrInvalidInput = validate.ErrInvalid
	ErrNotFound     = errors.New("notification not found")
)

// Publisher empuja notificaciones en vivo (hub websocket). Es opcional.
type Publisher interface {
	Publish(userID string, n Notification)
}

const defaultLimit = 50

type Service struct {
	repo Repository
	pub  Publisher
	now  func() time.Time
}

func NewService(repo Repository, pub Publisher) *Service {
	return &Service{repo: repo, pub: pub, now: time.Now}
}

func (s *Service) Notify(ctx context.Context, in Input) (Notification, error) {
	errs := validate.Errors{}
	validate.Required(errs, "user_id", in.UserID)
	validate.Required(errs, "message", in.Message)
	validate.OneOf(errs, "kind", in.Kind, KindPostLiked, KindPostCommented, KindPostModerated, KindReportReviewed)
	if err := errs.Err(); err != nil {
		return Notification{}, err
	}

	n := Notification{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Kind:      in.Kind,
		PostID:    strings.TrimSpace(in.PostID),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}
	if s.pub != nil {
		s.pub.Publish(n.UserID, n)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, userID string, q ListQuery) ([]Notification, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = defaultLimit
	}
	return s.repo.List(ctx, userID, q)
}

func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	ok, err := s.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
