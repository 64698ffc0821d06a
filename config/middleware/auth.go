package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-Karyawan/pkg/paseto"
)

// AuthMiddleware memvalidasi token Bearer PASETO dan meletakkan claims
// principal di Locals("user") untuk dibaca handler berikutnya.
func AuthMiddleware(maker *paseto.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Unauthorized, please log in first"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Format Authorization harus 'Bearer <token>'"})
		}

		claims, err := maker.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Token tidak valid atau kadaluwarsa"})
		}

		c.Locals("user", claims)

		return c.Next()
	}
}
