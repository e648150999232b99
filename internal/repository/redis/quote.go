package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"

	goredis "github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "quote:"

type quoteStore struct {
	client goredis.Cmdable
}

// NewQuoteStore keeps quotes as JSON values that redis expires on its own.
func NewQuoteStore(client goredis.Cmdable) repository.QuoteStore {
	return &quoteStore{client: client}
}

func quoteKey(id string) string {
	return quoteKeyPrefix + id
}

func (s *quoteStore) Save(ctx context.Context, q *domain.Quote, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("quote ttl must be positive, got %s", ttl)
	}
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	logger.DatabaseCall("SaveQuote", "SET "+quoteKey(q.ID), "ttl", ttl.String())
	err = s.client.Set(ctx, quoteKey(q.ID), string(data), ttl).Err()
	logger.DatabaseResult("SaveQuote", 1, err)
	return err
}

func (s *quoteStore) Get(ctx context.Context, id string) (*domain.Quote, error) {
	logger.DatabaseCall("GetQuote", "GET "+quoteKey(id))
	val, err := s.client.Get(ctx, quoteKey(id)).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("quote %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		logger.DatabaseResult("GetQuote", 0, err)
		return nil, err
	}
	var q domain.Quote
	if err := json.Unmarshal([]byte(val), &q); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", id, err)
	}
	logger.DatabaseResult("GetQuote", 1, nil)
	return &q, nil
}
