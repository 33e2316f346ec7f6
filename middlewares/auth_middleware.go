package middlewares

import (
	"strings"

	"github.com/GPSingh476/formflow-backend/configs"
	"github.com/GPSingh476/formflow-backend/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware Authorization başlığındaki bearer token'ı doğrular ve
// kullanıcı kimliğini locals'a koyar. Token yoksa veya geçersizse 401 döner.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	userID, email, err := token.Parse(configs.GetJWTSecret(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals("userID", userID)
	c.Locals("userEmail", email)
	return c.Next()
}
