package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/redis/go-redis/v9"
)

// ErrChallengeNotFound is returned when no ceremony is pending for a user
var ErrChallengeNotFound = errors.New("no pending passkey ceremony")

// ChallengeStore keeps WebAuthn ceremony session data between the
// options and verify calls. Entries expire with the challenge TTL, so an
// abandoned ceremony cleans itself up.
type ChallengeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChallengeStore creates a redis-backed ceremony store
func NewChallengeStore(client *redis.Client, ttl time.Duration) *ChallengeStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ChallengeStore{client: client, ttl: ttl}
}

func ceremonyKey(kind, userID string) string {
	return fmt.Sprintf("passkey:ceremony:%s:%s", kind, userID)
}

// Save stores ceremony session data for a user
func (s *ChallengeStore) Save(ctx context.Context, kind, userID string, data *webauthn.SessionData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return s.client.Set(ctx, ceremonyKey(kind, userID), payload, s.ttl).Err()
}

// Take retrieves and deletes ceremony session data, so each challenge
// can be consumed at most once.
func (s *ChallengeStore) Take(ctx context.Context, kind, userID string) (*webauthn.SessionData, error) {
	key := ceremonyKey(kind, userID)
	payload, err := s.client.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}

	data := &webauthn.SessionData{}
	if err := json.Unmarshal(payload, data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return data, nil
}
