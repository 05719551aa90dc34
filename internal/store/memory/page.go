package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

type entry struct {
	page      *domain.RenderedPage
	expiresAt time.Time // zero = never
}

// Store keeps rendered pages in process memory.
// It is used when no Redis address is configured.
type Store struct {
	mu    sync.RWMutex
	pages map[string]entry // fingerprint -> page
	now   func() time.Time
}

// NewStore creates an empty memory store
func NewStore() *Store {
	return &Store{
		pages: make(map[string]entry),
		now:   time.Now,
	}
}

// SavePage stores a page. ttl <= 0 keeps it until flushed.
func (s *Store) SavePage(_ context.Context, fingerprint string, page *domain.RenderedPage, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{page: page}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.pages[fingerprint] = e
	return nil
}

// GetPage returns the page for fingerprint, or (nil, nil) when absent or expired.
func (s *Store) GetPage(_ context.Context, fingerprint string) (*domain.RenderedPage, error) {
	s.mu.RLock()
	e, ok := s.pages[fingerprint]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock, a fresh Save may have raced us.
		if cur, ok := s.pages[fingerprint]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.pages, fingerprint)
		}
		s.mu.Unlock()
		return nil, nil
	}
	return e.page, nil
}

// FlushPages removes every page
func (s *Store) FlushPages(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages = make(map[string]entry)
	return nil
}

// Fingerprints lists the fingerprints of all unexpired pages and drops the
// expired ones.
func (s *Store) Fingerprints(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]string, 0, len(s.pages))
	for fp, e := range s.pages {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.pages, fp)
			continue
		}
		out = append(out, fp)
	}
	return out, nil
}
