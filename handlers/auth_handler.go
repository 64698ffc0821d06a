package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	"Sistem-Absensi-Karyawan/pkg/password"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type AuthHandler struct {
	userRepo *repository.UserRepository
	maker    *paseto.Maker
}

func NewAuthHandler(userRepo *repository.UserRepository, maker *paseto.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		maker:    maker,
	}
}

// Register godoc
// @Summary Register User
// @Description Mendaftarkan karyawan baru (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRegisterPayload true "Data registrasi user"
// @Success 201 {object} object{msg=string,uuid=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "gagal hash password"})
	}

	newUser := &models.User{
		Name:       payload.Name,
		Email:      payload.Email,
		Password:   hashedPassword,
		Role:       payload.Role,
		Position:   payload.Position,
		Department: payload.Department,
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	if _, err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": fmt.Sprintf("gagal mendaftarkan user: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":  "User berhasil didaftarkan (oleh admin)",
		"uuid": newUser.UUID,
	})
}

// Login godoc
// @Summary Login User
// @Description Login dengan email dan password, mengembalikan token PASETO
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Kredensial untuk Login"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Kombinasi email dan password salah"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Kombinasi email dan password salah"})
	}

	token, err := h.maker.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Gagal membuat token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":   "Login berhasil",
		"token": token,
		"uuid":  user.UUID,
		"role":  user.Role,
	})
}

// Me godoc
// @Summary Profil user yang sedang login
// @Description Mengembalikan data user pemilik token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	if !password.CheckPasswordHash(payload.OldPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Password lama tidak cocok"})
	}

	if payload.NewPassword == payload.OldPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Password baru tidak boleh sama dengan password lama."})
	}

	newHashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Gagal hash password baru"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	if _, err := h.userRepo.UpdateUserByUUID(ctx, user.UUID, bson.M{"password": newHashedPassword}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": fmt.Sprintf("Gagal update password: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Password berhasil diubah."})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(*models.Claims); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Unauthorized, please log in first"})
	}

	// Token stateless, tidak ada yang dihapus di server.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "Logout berhasil. Silakan hapus token dari sisi client.",
	})
}
