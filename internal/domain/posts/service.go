package posts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/platform/validate"
	"pet-care-hub/internal/ports/capabilities"
)

var (
	ErrInvalidInput = validate.ErrInvalid
	ErrNotFound     = errors.New("post not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

type Notifier interface {
	Notify(ctx context.Context, in notifications.Input) (notifications.Notification, error)
}

type Options struct {
	// DedupLikes: un like por usuario (y permite unlike). Sin esto cada llamada suma 1.
	DedupLikes bool
}

type Service struct {
	repo     Repository
	caps     capabilities.CapabilitiesResolver
	notifier Notifier
	opts     Options
	now      func() time.Time
}

// NewService: caps decide si los posts nuevos quedan pending (nil = sin moderación).
func NewService(repo Repository, caps capabilities.CapabilitiesResolver, notifier Notifier, opts Options) *Service {
	return &Service{
		repo:     repo,
		caps:     caps,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
	}
}

type CreateInput struct {
	Title    string
	Content  string
	Category string
}

func (s *Service) Create(ctx context.Context, actor Actor, in CreateInput) (Post, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return Post{}, ErrInvalidInput
	}

	cat := Category(strings.ToLower(strings.TrimSpace(in.Category)))
	if cat == "" {
		cat = CategoryGeneral
	}

	errs := validate.Errors{}
	validate.Required(errs, "title", in.Title)
	validate.MaxLen(errs, "title", in.Title, 200)
	validate.Required(errs, "content", in.Content)
	validate.MaxLen(errs, "content", in.Content, 10000)
	validate.OneOf(errs, "category", cat, categories...)
	if err := errs.Err(); err != nil {
		return Post{}, err
	}

	status := StatusApproved
	moderated, err := s.requiresModeration(ctx, actor)
	if err != nil {
		return Post{}, err
	}
	if moderated {
		status = StatusPending
	}

	now := s.now()
	p := Post{
		ID:         uuid.NewString(),
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Title:      strings.TrimSpace(in.Title),
		Content:    strings.TrimSpace(in.Content),
		Category:   cat,
		Comments:   []Comment{},
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// Get devuelve el post (si es visible para el actor) y suma una vista.
func (s *Service) Get(ctx context.Context, actor Actor, id string) (Post, error) {
	p, err := s.visible(ctx, actor, id)
	if err != nil {
		return Post{}, err
	}
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return Post{}, err
	}
	p.Views++
	return p, nil
}

type EditInput struct {
	Title    *string
	Content  *string
	Category *string
}

func (s *Service) Edit(ctx context.Context, actor Actor, id string, in EditInput) (Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if !actor.canManage(p.AuthorID) {
		return Post{}, ErrForbidden
	}

	errs := validate.Errors{}
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
		validate.Required(errs, "title", p.Title)
		validate.MaxLen(errs, "title", p.Title, 200)
	}
	if in.Content != nil {
		p.Content = strings.TrimSpace(*in.Content)
		validate.Required(errs, "content", p.Content)
		validate.MaxLen(errs, "content", p.Content, 10000)
	}
	if in.Category != nil {
		p.Category = Category(strings.ToLower(strings.TrimSpace(*in.Category)))
		validate.OneOf(errs, "category", p.Category, categories...)
	}
	if err := errs.Err(); err != nil {
		return Post{}, err
	}

	// Con moderación activa, lo que edita el autor vuelve a la cola.
	pending, err := s.requiresModeration(ctx, actor)
	if err != nil {
		return Post{}, err
	}
	if pending {
		p.Status = StatusPending
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// Delete: autor, moderator o admin. Un id desconocido es no-op.
func (s *Service) Delete(ctx context.Context, actor Actor, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !actor.canManage(p.AuthorID) {
		return ErrForbidden
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}

// Like suma 1. Con DedupLikes, el segundo like del mismo usuario no cambia nada.
func (s *Service) Like(ctx context.Context, actor Actor, id string) (Post, error) {
	p, err := s.visible(ctx, actor, id)
	if err != nil {
		return Post{}, err
	}

	if s.opts.DedupLikes {
		added, err := s.repo.AddLike(ctx, id, actor.ID)
		if err != nil {
			return Post{}, err
		}
		if !added {
			return p, nil
		}
	}

	if err := s.repo.IncrementLikes(ctx, id, 1); err != nil {
		return Post{}, err
	}
	p.Likes++

	if p.AuthorID != actor.ID {
		s.notify(ctx, notifications.Input{
			UserID:  p.AuthorID,
			Kind:    notifications.KindPostLiked,
			PostID:  p.ID,
			Message: fmt.Sprintf("%s liked your post %q", actor.Name, p.Title),
		})
	}
	return p, nil
}

// Unlike solo existe con DedupLikes; sin registro por usuario no hay qué quitar.
func (s *Service) Unlike(ctx context.Context, actor Actor, id string) (Post, error) {
	if !s.opts.DedupLikes {
		return Post{}, fmt.Errorf("%w: likes are not tracked per user", ErrConflict)
	}
	p, err := s.visible(ctx, actor, id)
	if err != nil {
		return Post{}, err
	}

	removed, err := s.repo.RemoveLike(ctx, id, actor.ID)
	if err != nil {
		return Post{}, err
	}
	if !removed {
		return p, nil
	}
	if err := s.repo.IncrementLikes(ctx, id, -1); err != nil {
		return Post{}, err
	}
	p.Likes--
	return p, nil
}

// AddComment: texto vacío (tras trim) es no-op. Los comentarios se agregan al final.
func (s *Service) AddComment(ctx context.Context, actor Actor, postID, text string) (Post, error) {
	p, err := s.visible(ctx, actor, postID)
	if err != nil {
		return Post{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return p, nil
	}
	errs := validate.Errors{}
	validate.MaxLen(errs, "text", text, 2000)
	if err := errs.Err(); err != nil {
		return Post{}, err
	}

	c := Comment{
		ID:         uuid.NewString(),
		PostID:     postID,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Text:       text,
		CreatedAt:  s.now(),
	}
	if err := s.repo.AddComment(ctx, c); err != nil {
		return Post{}, err
	}
	p.Comments = append(p.Comments, c)

	if p.AuthorID != actor.ID {
		s.notify(ctx, notifications.Input{
			UserID:  p.AuthorID,
			Kind:    notifications.KindPostCommented,
			PostID:  p.ID,
			Message: fmt.Sprintf("%s commented on your post %q", actor.Name, p.Title),
		})
	}
	return p, nil
}

// DeleteComment: autor del comentario, moderator o admin. Ids desconocidos son no-op.
func (s *Service) DeleteComment(ctx context.Context, actor Actor, postID, commentID string) error {
	p, err := s.repo.GetByID(ctx, postID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, c := range p.Comments {
		if c.ID != commentID {
			continue
		}
		if !actor.canManage(c.AuthorID) {
			return ErrForbidden
		}
		_, err := s.repo.DeleteComment(ctx, postID, commentID)
		return err
	}
	return nil
}

func (s *Service) Moderate(ctx context.Context, actor Actor, id string, decision Decision) (Post, error) {
	if !actor.Role.CanModerate() {
		return Post{}, ErrForbidden
	}

	errs := validate.Errors{}
	validate.OneOf(errs, "decision", decision, DecisionApprove, DecisionReject)
	if err := errs.Err(); err != nil {
		return Post{}, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}

	p.Status = StatusApproved
	if decision == DecisionReject {
		p.Status = StatusRejected
	}
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Post{}, err
	}

	s.notify(ctx, notifications.Input{
		UserID:  p.AuthorID,
		Kind:    notifications.KindPostModerated,
		PostID:  p.ID,
		Message: fmt.Sprintf("Your post %q was %s", p.Title, p.Status),
	})
	return p, nil
}

type FeedFilter struct {
	Category Category
	Query    string
	Sort     string
	AuthorID string
}

// Feed: posts aprobados más los propios del actor (en cualquier estado).
func (s *Service) Feed(ctx context.Context, actor Actor, f FeedFilter) ([]Post, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Post, 0, len(all))
	for _, p := range all {
		if p.Status != StatusApproved && p.AuthorID != actor.ID {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.AuthorID != "" && p.AuthorID != f.AuthorID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Content), q) {
			continue
		}
		out = append(out, p)
	}

	sortFeed(out, f.Sort)
	return out, nil
}

// Pending: cola de moderación, más antiguos primero.
func (s *Service) Pending(ctx context.Context, actor Actor) ([]Post, error) {
	if !actor.Role.CanModerate() {
		return nil, ErrForbidden
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Post, 0)
	for _, p := range all {
		if p.Status == StatusPending {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// CountByAuthor se usa en las estadísticas del perfil.
func (s *Service) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range all {
		if p.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

// Exists lo usa reports para validar postId.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// visible: aprobado, propio, o el actor modera.
func (s *Service) visible(ctx context.Context, actor Actor, id string) (Post, error) {
	if strings.TrimSpace(id) == "" {
		return Post{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if p.Status != StatusApproved && !actor.canManage(p.AuthorID) {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) requiresModeration(ctx context.Context, actor Actor) (bool, error) {
	if s.caps == nil || actor.Role.CanModerate() {
		return false, nil
	}
	return s.caps.HasFeature(ctx, capabilities.CapabilityCheck{
		UserID:  actor.ID,
		Feature: capabilities.FeaturePostModeration,
	})
}

// notify es best-effort: una notificación fallida no revierte el like/comentario.
func (s *Service) notify(ctx context.Context, in notifications.Input) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Notify(ctx, in); err != nil {
		logger.FromContext(ctx, nil).Warn("notification failed", map[string]any{
			"kind":    string(in.Kind),
			"user_id": in.UserID,
			"post_id": in.PostID,
			"error":   err.Error(),
		})
	}
}

func sortFeed(items []Post, mode string) {
	recent := func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) }

	switch mode {
	case SortPopular:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Likes != items[j].Likes {
				return items[i].Likes > items[j].Likes
			}
			return recent(i, j)
		})
	case SortDiscussed:
		sort.SliceStable(items, func(i, j int) bool {
			if len(items[i].Comments) != len(items[j].Comments) {
				return len(items[i].Comments) > len(items[j].Comments)
			}
			return recent(i, j)
		})
	default:
		sort.SliceStable(items, recent)
	}
}
