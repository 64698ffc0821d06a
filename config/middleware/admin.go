package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-Karyawan/models"
)

// AdminMiddleware membatasi akses ke principal dengan role admin.
// Harus dipasang setelah AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*models.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Unauthorized, please log in first"})
		}

		if !claims.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"msg": "Akses ditolak. Hak akses admin diperlukan"})
		}

		return c.Next()
	}
}
