package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimiter is a fixed-window limiter shared by every instance through Redis.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *slog.Logger
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger.With("component", "rate_limiter"),
	}
}

// Quota is the state of one key's window after a request was counted.
type Quota struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// Allow counts one request for key.
func (l *RateLimiter) Allow(ctx context.Context, key string) (Quota, error) {
	redisKey := rateLimitKeyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	ttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Quota{}, err
	}

	count := int(incr.Val())
	resetIn := ttl.Val()
	// a fresh key has no expiry yet; the first request of a window starts the clock
	if resetIn < 0 {
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return Quota{}, err
		}
		resetIn = l.window
	}

	return Quota{
		Allowed:   count <= l.limit,
		Remaining: max(l.limit-count, 0),
		ResetIn:   resetIn,
	}, nil
}

// Middleware limits requests per client IP and answers 429 once the window's budget
// is spent. If Redis is unreachable requests are let through.
func (l *RateLimiter) Middleware(skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper(ctx) {
				return next(ctx)
			}

			quota, err := l.Allow(ctx.Request().Context(), ctx.RealIP())
			if err != nil {
				l.logger.WarnContext(ctx.Request().Context(), "Rate limiter unavailable", "error", err)
				return next(ctx)
			}

			reset := strconv.Itoa(int(quota.ResetIn.Round(time.Second).Seconds()))
			header := ctx.Response().Header()
			header.Set("RateLimit-Limit", strconv.Itoa(l.limit))
			header.Set("RateLimit-Remaining", strconv.Itoa(quota.Remaining))
			header.Set("RateLimit-Reset", reset)

			if !quota.Allowed {
				header.Set("Retry-After", reset)
				return ctx.JSON(http.StatusTooManyRequests, servers.Error{
					Code:    CodeTooManyRequests,
					Message: "Too many requests from this IP, please try again later",
				})
			}
			return next(ctx)
		}
	}
}
