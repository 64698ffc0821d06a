package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/repository"
)

const repoTimeout = 5 * time.Second

// resolvePrincipal mengambil claims dari Locals dan memuat record user-nya.
// Jika gagal, response error sudah ditulis dan user bernilai nil.
func resolvePrincipal(c *fiber.Ctx, userRepo *repository.UserRepository) (*models.User, error) {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Unauthorized, please log in first"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	user, err := userRepo.FindUserByUUID(ctx, claims.UserUUID)
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if user == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "User Tidak Ditemukan!"})
	}
	return user, nil
}
