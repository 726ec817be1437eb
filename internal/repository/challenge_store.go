package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// ChallengeStore holds email verification challenges. A put replaces any
// prior challenge for the user; consume succeeds at most once per code.
type ChallengeStore interface {
	Put(ctx context.Context, challenge *domain.EmailVerificationChallenge) error
	Consume(ctx context.Context, userID, code string) (bool, error)
}

const challengeKeyPrefix = "staffing:challenge:"

// Compare-and-delete so a code can be consumed exactly once even under
// concurrent verification attempts.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    redis.call("DEL", KEYS[1])
    return 1
end
return 0`)

type redisChallengeStore struct {
	client *redis.Client
}

// NewRedisChallengeStore builds a ChallengeStore backed by Redis; the key
// TTL enforces challenge expiry.
func NewRedisChallengeStore(client *redis.Client) ChallengeStore {
	return &redisChallengeStore{client: client}
}

func (s *redisChallengeStore) Put(ctx context.Context, challenge *domain.EmailVerificationChallenge) error {
	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("challenge for user %s already expired", challenge.UserID)
	}
	return s.client.Set(ctx, challengeKey(challenge.UserID), challenge.Code, ttl).Err()
}

func (s *redisChallengeStore) Consume(ctx context.Context, userID, code string) (bool, error) {
	res, err := consumeScript.Run(ctx, s.client, []string{challengeKey(userID)}, code).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func challengeKey(userID string) string {
	return challengeKeyPrefix + userID
}
