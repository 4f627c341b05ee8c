// Package redisidem implements idempotency-key reservation on Redis.
// Placement endpoints reserve the caller's Idempotency-Key before doing any
// work; a key that is already reserved means the same order request was seen
// before and must not be placed twice.
package redisidem

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "idem:order:"
	defaultTTL = 24 * time.Hour
)

// Store reserves idempotency keys with a TTL. Reservation uses SETNX, so
// concurrent requests with the same key race on Redis and exactly one wins.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a store with the default 24h reservation TTL.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: defaultTTL}
}

// NewStoreWithTTL creates a store with a custom reservation TTL.
func NewStoreWithTTL(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Key builds the reservation key for one user's idempotency key. Scoping by
// user keeps two users with the same client-generated key from colliding.
func (s *Store) Key(userID kernel.UUID, idempotencyKey string) string {
	return keyPrefix + userID.String() + ":" + idempotencyKey
}

// Reserve claims the key. Returns false when the key was already reserved.
func (s *Store) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, 1, s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Release frees a reservation so a retry can go through. Called when the
// placement it guarded failed.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
