package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"pet-care-hub/internal/ports/auth"
)

// MemoryStore guarda sesiones en go-cache; expiran solas según ExpiresAt.
type MemoryStore struct {
	cache      *cache.Cache
	defaultTTL time.Duration
	now        func() time.Time
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &MemoryStore{
		cache:      cache.New(defaultTTL, 10*time.Minute),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, s auth.Session) error {
	b, err := encode(s)
	if err != nil {
		return err
	}
	m.cache.Set(Key(s.ID), b, ttlFor(s, m.defaultTTL, m.now()))
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (auth.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	v, found := m.cache.Get(Key(id))
	if !found {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	b, ok := v.([]byte)
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return decode(b)
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Delete(Key(id))
	return nil
}
