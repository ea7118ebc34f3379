package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist tracks revoked access tokens in Redis. Entries expire on their
// own once the token they shadow would have expired anyway.
type Denylist struct {
	client *redis.Client
}

// NewDenylist creates a Redis-backed access token denylist.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// Revoke marks the given access token as revoked for the remaining ttl.
func (d *Denylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, denylistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("set denylist entry: %w", err)
	}

	return nil
}

// IsRevoked reports whether the given access token has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check denylist entry: %w", err)
	}

	return n > 0, nil
}

// denylistKey hashes the token so raw JWTs never land in Redis.
func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "denylist:" + hex.EncodeToString(sum[:])
}
