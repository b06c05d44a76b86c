package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"campus-library/pkg/redis"
	"campus-library/pkg/response"
)

// Limiter 限流判定
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ── Redis 滑动窗口 ──

type redisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter 基于 Redis 的跨实例限流
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) Limiter {
	return &redisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.rdb.CheckRateLimit(ctx, key, l.limit, l.window)
}

// ── 进程内令牌桶 ──

type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

// NewLocalLimiter 未启用 Redis 时使用的进程内限流
// 平均速率为 window 内 limit 次，突发上限 limit
func NewLocalLimiter(limit int, window time.Duration) Limiter {
	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
	}
}

func (l *localLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	return lim.Allow(), nil
}

// RateLimit 速率限制中间件，按 客户端 IP + 路由 计数
// limiter 出错时降级放行
func RateLimit(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("限流检查失败，降级放行", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, response.CodeTooManyRequest, "Too many requests, please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
