package database

import (
	"context"
	"time"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/sentry/tracing"
	"campus-activity-system/tools"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// InitRedis 初始化 Redis 客户端，用于登出令牌黑名单
func InitRedis() {
	cfg := config.Get().Redis
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if tracing.IsEnabled() {
		RDB.AddHook(tracing.NewRedisSentryHook())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tools.PanicOnErr(RDB.Ping(ctx).Err())
}

const tokenBlacklistPrefix = "auth:blacklist:"

// BlacklistToken 将令牌 jti 拉黑至其自然过期时间
func BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return RDB.Set(ctx, tokenBlacklistPrefix+jti, 1, ttl).Err()
}

// TokenBlacklisted 查询令牌 jti 是否已被拉黑
func TokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := RDB.Exists(ctx, tokenBlacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
