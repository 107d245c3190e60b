package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rrens/kopiloka/internal/store"
)

const documentPrefix = "kopiloka:doc:"

// DocumentStore implements domain.DocumentStore with one string value per key
type DocumentStore struct {
	client *Client
	ttl    time.Duration
}

// NewDocumentStore creates a Redis document store. A zero ttl keeps
// documents until they are deleted.
func NewDocumentStore(client *Client, ttl time.Duration) *DocumentStore {
	return &DocumentStore{client: client, ttl: ttl}
}

func (s *DocumentStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := store.CheckKey(key); err != nil {
		return false, err
	}
	data, err := s.client.rdb.Get(ctx, documentPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get document %q: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

func (s *DocumentStore) Put(ctx context.Context, key string, value any) error {
	if err := store.CheckKey(key); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	if err := s.client.rdb.Set(ctx, documentPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	if err := store.CheckKey(key); err != nil {
		return err
	}
	if err := s.client.rdb.Del(ctx, documentPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *DocumentStore) Close() error {
	return s.client.Close()
}
