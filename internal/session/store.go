package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ukydev/sahigaadi/internal/models"
)

// DefaultTTL is how long a saved wizard profile stays usable.
const DefaultTTL = 24 * time.Hour

// sweepInterval bounds how often Save scans for expired profiles.
const sweepInterval = time.Minute

var ErrNoProfile = errors.New("no profile for session")

// Store persists the wizard profile of an anonymous session.
type Store interface {
	Save(ctx context.Context, sessionID string, profile models.WizardProfile) error
	Load(ctx context.Context, sessionID string) (*models.StoredProfile, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps profiles in process. Expired entries are dropped when
// loaded and by a periodic sweep on Save, so abandoned sessions do not pile up.
type MemoryStore struct {
	mu        sync.RWMutex
	profiles  map[string]models.StoredProfile
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore creates an in-memory store. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		profiles: make(map[string]models.StoredProfile),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save replaces the profile stored for a session.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, profile models.WizardProfile) error {
	if sessionID == "" {
		return errors.New("session id is empty")
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)
	stored, exists := s.profiles[sessionID]
	if !exists || s.expired(stored, now) {
		stored = models.StoredProfile{SessionID: sessionID, CreatedAt: now}
	}
	stored.Profile = profile
	stored.UpdatedAt = now
	s.profiles[sessionID] = stored
	return nil
}

// Load returns the stored profile or ErrNoProfile.
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*models.StoredProfile, error) {
	now := s.now()

	s.mu.RLock()
	stored, exists := s.profiles[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNoProfile
	}
	if s.expired(stored, now) {
		s.evictIfExpired(sessionID, now)
		return nil, ErrNoProfile
	}
	return &stored, nil
}

// evictIfExpired deletes the entry only if it is still expired once the write
// lock is held, so a Save that raced in between is kept.
func (s *MemoryStore) evictIfExpired(sessionID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, exists := s.profiles[sessionID]; exists && s.expired(stored, now) {
		delete(s.profiles, sessionID)
	}
}

// Delete forgets a session's profile. Deleting an unknown session is not an error.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.profiles, sessionID)
	s.mu.Unlock()
	return nil
}

// Len reports how many entries are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// sweep drops expired profiles at most once per sweepInterval. Callers hold s.mu.
func (s *MemoryStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now
	for id, p := range s.profiles {
		if s.expired(p, now) {
			delete(s.profiles, id)
		}
	}
}

func (s *MemoryStore) expired(p models.StoredProfile, now time.Time) bool {
	return now.Sub(p.UpdatedAt) > s.ttl
}
