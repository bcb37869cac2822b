package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// ErrUnknownToken is returned when a presented token maps to no user.
var ErrUnknownToken = errors.New("unknown token")

const (
	userKeyPrefix  = "auth:user:"
	tokenKeyPrefix = "auth:token:"
)

// Store issues and validates opaque bearer tokens. A user gets exactly one
// token, created on first demand and returned unchanged afterwards.
type Store interface {
	GetOrCreate(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, error)
}

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed token Store.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

// GetOrCreate returns the user's token, minting one if none exists yet.
// The per-user key is claimed with SETNX and re-read, so concurrent first
// logins converge on a single token.
func (s *redisStore) GetOrCreate(ctx context.Context, userID int64) (string, error) {
	userKey := userKeyPrefix + strconv.FormatInt(userID, 10)

	existing, err := s.rdb.Get(ctx, userKey).Result()
	if err == nil {
		return existing, nil
	}
	if err != redis.Nil {
		return "", fmt.Errorf("failed to look up token: %w", err)
	}

	candidate, err := generateKey()
	if err != nil {
		return "", err
	}

	if err := s.rdb.SetNX(ctx, userKey, candidate, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to claim token key: %w", err)
	}

	// Read back whichever candidate won the claim.
	tok, err := s.rdb.Get(ctx, userKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read claimed token: %w", err)
	}

	if err := s.rdb.Set(ctx, tokenKeyPrefix+tok, userID, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to index token: %w", err)
	}

	return tok, nil
}

// Resolve maps a presented token back to the owning user id.
func (s *redisStore) Resolve(ctx context.Context, tok string) (int64, error) {
	val, err := s.rdb.Get(ctx, tokenKeyPrefix+tok).Result()
	if err == redis.Nil {
		return 0, ErrUnknownToken
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt token mapping: %w", err)
	}
	return userID, nil
}

// generateKey returns a 40-character hex key.
func generateKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
