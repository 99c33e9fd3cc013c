package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ClientIPContextKey = "client_ip"

// RequestInfo resolves the real client IP when the service sits behind a
// reverse proxy. Comment submissions record this address for moderation.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
				ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(ClientIPContextKey, ip)
		return c.Next()
	}
}

func GetClientIP(c *fiber.Ctx) string {
	ip, ok := c.Locals(ClientIPContextKey).(string)
	if !ok || ip == "" {
		return c.IP()
	}
	return ip
}
