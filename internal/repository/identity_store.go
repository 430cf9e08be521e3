package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
)

// identityStore keeps the current identity as a JSON document under a single Redis key.
type identityStore struct {
	client *redis.Client
	key    string
}

func NewIdentityStore(client *redis.Client, key string) port.IdentityStore {
	return &identityStore{
		client: client,
		key:    key,
	}
}

func (s *identityStore) Load(ctx context.Context) (*domain.Identity, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("persisted identity under %s has no id", s.key)
	}

	return &identity, nil
}

func (s *identityStore) Save(ctx context.Context, identity domain.Identity) error {
	if identity.ID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (s *identityStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
