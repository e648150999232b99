// Package memory holds process-local stores used when redis is disabled.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/repository"
)

type quoteEntry struct {
	quote     domain.Quote
	expiresAt time.Time
}

type QuoteStore struct {
	mu      sync.Mutex
	entries map[string]quoteEntry
	now     func() time.Time
}

var _ repository.QuoteStore = (*QuoteStore)(nil)

func NewQuoteStore() *QuoteStore {
	return NewQuoteStoreWithClock(time.Now)
}

func NewQuoteStoreWithClock(now func() time.Time) *QuoteStore {
	return &QuoteStore{entries: make(map[string]quoteEntry), now: now}
}

func (s *QuoteStore) Save(ctx context.Context, q *domain.Quote, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("quote ttl must be positive, got %s", ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[q.ID] = quoteEntry{quote: *q, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *QuoteStore) Get(ctx context.Context, id string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, fmt.Errorf("quote %s: %w", id, domain.ErrNotFound)
	}
	q := e.quote
	return &q, nil
}

// Len reports the number of unexpired quotes.
func (s *QuoteStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.entries)
}

func (s *QuoteStore) sweepLocked() {
	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
