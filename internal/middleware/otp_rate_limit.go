package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// OTPRateLimit caps OTP send requests per phone per hour using Redis if
// available. Requests without a parseable phone fall back to the client IP.
func OTPRateLimit(cache *redis.Client, maxPerHour int) fiber.Handler {
	if maxPerHour <= 0 {
		maxPerHour = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		var req struct {
			Phone string `json:"phone"`
		}
		_ = c.BodyParser(&req)
		phone := strings.TrimSpace(req.Phone)
		if phone == "" {
			phone = c.IP()
		}
		key := "rl:otp:" + phone
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Hour)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerHour) {
			return fiber.NewError(http.StatusTooManyRequests, "too many OTP requests, try again later")
		}
		return c.Next()
	}
}
