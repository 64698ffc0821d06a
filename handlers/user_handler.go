package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"Sistem-Absensi-Karyawan/models"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type UserHandler struct {
	userRepo       *repository.UserRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	overtimeRepo   repository.OvertimeRepository
}

func NewUserHandler(userRepo *repository.UserRepository, attendanceRepo repository.AttendanceRepository, leaveRepo repository.LeaveRequestRepository, overtimeRepo repository.OvertimeRepository) *UserHandler {
	return &UserHandler{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		overtimeRepo:   overtimeRepo,
	}
}

func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 20))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	users, total, err := h.userRepo.GetAllUsers(ctx, bson.M{}, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":   "Data users berhasil diambil",
		"users": users,
		"total": total,
	})
}

func (h *UserHandler) GetUserByUUID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	user, err := h.userRepo.FindUserByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "User Tidak Ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":  "User berhasil ditemukan",
		"user": user,
	})
}

// UpdateUser mengubah data profil user. Perubahan tidak merambat ke snapshot
// di record absensi/cuti/lembur yang sudah ada.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var payload models.UserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "invalid request body"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.Department != "" {
		updateData["department"] = payload.Department
	}
	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Tidak ada data yang diubah"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.userRepo.UpdateUserByUUID(ctx, c.Params("id"), updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "User Tidak Ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "User berhasil diupdate"})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.userRepo.DeleteUserByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "User Tidak Ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "User berhasil dihapus"})
}

func (h *UserHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	var stats models.DashboardStats
	var err error

	if stats.TotalKaryawan, err = h.userRepo.CountUsers(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	start, end := util.DayBoundsWIB(time.Now())
	if stats.HadirHariIni, err = h.attendanceRepo.CountCheckinsBetween(ctx, start, end); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	if stats.PengajuanCutiPending, err = h.leaveRepo.CountPending(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	if stats.LemburPending, err = h.overtimeRepo.CountPending(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
