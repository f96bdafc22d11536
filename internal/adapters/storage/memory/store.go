// Package memory guarda todo en mapas del proceso (modo dev y tests).
// Un solo mutex cubre todas las colecciones para que la cascada mascota -> recordatorios sea atómica.
package memory

import (
	"errors"
	"sync"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/domain/reminders"
	"pet-care-hub/internal/domain/reports"
	"pet-care-hub/internal/domain/users"
)

var (
	errIDRequired    = errors.New("id required")
	errAlreadyExists = errors.New("already exists")
)

type Store struct {
	mu sync.RWMutex

	users         map[string]users.User
	pets          map[string]pets.Pet
	reminders     map[string]reminders.Reminder
	posts         map[string]posts.Post
	likes         map[likeKey]struct{}
	reports       map[string]reports.Report
	notifications map[string]notifications.Notification
}

type likeKey struct {
	postID string
	userID string
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]users.User),
		pets:          make(map[string]pets.Pet),
		reminders:     make(map[string]reminders.Reminder),
		posts:         make(map[string]posts.Post),
		likes:         make(map[likeKey]struct{}),
		reports:       make(map[string]reports.Report),
		notifications: make(map[string]notifications.Notification),
	}
}

func (s *Store) Users() users.Repository                 { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository                   { return &petRepo{s: s} }
func (s *Store) Reminders() reminders.Repository         { return &reminderRepo{s: s} }
func (s *Store) Posts() posts.Repository                 { return &postRepo{s: s} }
func (s *Store) Reports() reports.Repository             { return &reportRepo{s: s} }
func (s *Store) Notifications() notifications.Repository { return &notificationRepo{s: s} }
