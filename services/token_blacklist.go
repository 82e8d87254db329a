package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenBlacklist stores invalidated tokens until their natural
// expiry so logout takes effect immediately.
type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance, nil until InitTokenBlacklist runs
var TokenBlacklist *RedisTokenBlacklist

func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

func InitTokenBlacklist(redisURL string) error {
	tb, err := NewTokenBlacklist(redisURL)
	if err != nil {
		return err
	}
	TokenBlacklist = tb
	return nil
}

// BlacklistTokens invalidates an access/refresh token pair.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	if err := TokenBlacklist.blacklist(accessToken); err != nil {
		return fmt.Errorf("failed to blacklist access token: %w", err)
	}
	if refreshToken != "" {
		if err := TokenBlacklist.blacklist(refreshToken); err != nil {
			return fmt.Errorf("failed to blacklist refresh token: %w", err)
		}
	}
	return nil
}

// IsTokenBlacklisted reports whether a token has been invalidated.
// When the blacklist is unavailable the token is treated as valid;
// expiry still bounds its lifetime.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}
	ctx := context.Background()
	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(tokenString)).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

func (tb *RedisTokenBlacklist) blacklist(tokenString string) error {
	claims, err := ParseToken(tokenString)
	if err != nil {
		// Already invalid; nothing to store.
		return nil
	}

	ttl := time.Hour
	if exp, ok := claims["exp"].(float64); ok {
		until := time.Until(time.Unix(int64(exp), 0))
		if until <= 0 {
			return nil
		}
		ttl = until
	}

	ctx := context.Background()
	return tb.Client.Set(ctx, blacklistKey(tokenString), "1", ttl).Err()
}

func blacklistKey(tokenString string) string {
	return "blacklist:" + tokenString
}
