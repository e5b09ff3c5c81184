package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin answers 403 with a plain-text body for everyone but admins.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		business := CurrentBusiness(c)
		if business == nil || !business.IsAdmin() {
			if business != nil {
				log.Printf("Business %d denied admin access", business.ID)
			}
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		}
		return c.Next()
	}
}
