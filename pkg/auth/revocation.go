package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList tracks bearer tokens revoked before their natural expiry.
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisRevocationList implements RevocationList on a redis blacklist. Entries
// expire together with the token they shadow, so the set stays small.
type RedisRevocationList struct {
	rdb *redis.Client
}

func NewRedisRevocationList(rdb *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{rdb: rdb}
}

// Revoke blacklists a token string until its remaining lifetime runs out
func (l *RedisRevocationList) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return l.rdb.Set(ctx, "blacklist:"+token, "revoked", ttl).Err()
}

// IsRevoked reports whether a token string has been blacklisted
func (l *RedisRevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	exists, err := l.rdb.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
