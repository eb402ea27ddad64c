package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter allows max requests per client IP in a sliding window.
// A negative max disables limiting.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max < 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
