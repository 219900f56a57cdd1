package booking

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is a wizard snapshot held between HTTP requests so stateless
// clients can drive the multi-step flow. Sessions expire after a period of
// inactivity; expiry simply discards the in-progress form.
type Session struct {
	ID        string    `json:"id"`
	Step      Step      `json:"step"`
	Form      FormData  `json:"form"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionStore persists wizard sessions. The Redis implementation is used
// when the storefront runs more than one replica; the in-memory one covers
// single-instance and local development.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error
}

type MemorySessionStore struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemorySessionStore{ttl: ttl, sessions: map[string]Session{}}
}

func (m *MemorySessionStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.UpdatedAt = time.Now().UTC()
	m.sessions[s.ID] = s
	m.sweepLocked()
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false, nil
	}
	if time.Since(s.UpdatedAt) > m.ttl {
		delete(m.sessions, id)
		return Session{}, false, nil
	}
	return s, true, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// sweepLocked drops expired sessions opportunistically on writes; there is no
// background janitor.
func (m *MemorySessionStore) sweepLocked() {
	cutoff := time.Now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return "wizard:session:" + id
}

func (r *RedisSessionStore) Save(ctx context.Context, s Session) error {
	s.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(s.ID), raw, r.ttl).Err()
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (Session, bool, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, false, err
	}
	return s, true, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}
