package middleware

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/utils"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func parseJWT(token string) (*jwt.Token, error) {
	return jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
}

// Protected rejects requests without a valid access token.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := parseJWT(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly must run after Protected; it checks the isAdmin claim.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
		}
		if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin claim missing"))
		}
		return c.Next()
	}
}

// OptionalJWT parses a token when present and lets guests through.
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		jwtToken, err := parseJWT(token)
		if err != nil || !jwtToken.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RateLimit caps requests per client IP per route within a window, counted
// in redis. If redis is unavailable the limiter fails open.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if database.Redis == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.IP(), c.Path())
		ctx := c.Context()

		count, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			database.Redis.Expire(ctx, key, window)
		}
		if count > int64(max) {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.TOO_MANY_REQUESTS, nil)
		}
		return c.Next()
	}
}
