package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Sistem-Absensi-Karyawan/models"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type OvertimeHandler struct {
	overtimeRepo repository.OvertimeRepository
	userRepo     *repository.UserRepository
}

func NewOvertimeHandler(overtimeRepo repository.OvertimeRepository, userRepo *repository.UserRepository) *OvertimeHandler {
	return &OvertimeHandler{
		overtimeRepo: overtimeRepo,
		userRepo:     userRepo,
	}
}

// CreateOvertime godoc
// @Summary Ajukan lembur
// @Description Satu klaim lembur per user per tanggal, maksimal 12 jam. Total upah = jam x tarif tetap.
// @Tags Overtime
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.OvertimeCreatePayload true "Data lembur"
// @Success 201 {object} object{msg=string,overtime=models.Overtime}
// @Failure 400 {object} models.ErrorResponse
// @Router /overtime [post]
func (h *OvertimeHandler) CreateOvertime(c *fiber.Ctx) error {
	var payload models.OvertimeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Payload tidak valid"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Semua data harus diisi!", "errors": errs})
	}

	if util.ExceedsDailyLimit(payload.Hours) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Jam lembur tidak boleh lebih dari 12 jam per hari."})
	}

	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	existing, err := h.overtimeRepo.FindByUserAndDate(ctx, user.ID, payload.Date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Anda sudah memiliki lembur di tanggal ini!"})
	}

	overtime := &models.Overtime{
		UUID:         uuid.New().String(),
		UserID:       user.ID,
		Name:         user.Name,
		Department:   user.Department,
		Position:     user.Position,
		Date:         payload.Date,
		Hours:        payload.Hours,
		Description:  payload.Description,
		OvertimeRate: models.OvertimeRatePerHour,
		TotalPayment: util.OvertimePay(payload.Hours, models.OvertimeRatePerHour),
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := h.overtimeRepo.Create(ctx, overtime); err != nil {
		// Index unik (user_id, date) menangkap race dua klaim bersamaan.
		if repository.IsDuplicate(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Anda sudah memiliki lembur di tanggal ini!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg": "Lembur berhasil ditambahkan",
		"overtime": fiber.Map{
			"uuid":          overtime.UUID,
			"userName":      user.Name,
			"date":          overtime.Date,
			"hours":         overtime.Hours,
			"description":   overtime.Description,
			"total_payment": overtime.TotalPayment,
		},
	})
}

func (h *OvertimeHandler) updateOvertimeStatus(c *fiber.Ctx, status string) error {
	approver, resErr := resolvePrincipal(c, h.userRepo)
	if approver == nil {
		return resErr
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	overtime, err := h.overtimeRepo.FindByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if overtime == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Lembur tidak ditemukan!"})
	}

	if models.IsTerminalStatus(overtime.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Lembur ini sudah diproses sebelumnya."})
	}

	if _, err := h.overtimeRepo.UpdateStatus(ctx, overtime.UUID, status, approver.Name); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	msg := "Lembur berhasil disetujui"
	if status == models.StatusRejected {
		msg = "Lembur ditolak"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": msg,
		"overtime": fiber.Map{
			"uuid":        overtime.UUID,
			"status":      status,
			"approved_by": approver.Name,
			"date":        overtime.Date,
			"hours":       overtime.Hours,
			"description": overtime.Description,
		},
	})
}

func (h *OvertimeHandler) ApproveOvertime(c *fiber.Ctx) error {
	return h.updateOvertimeStatus(c, models.StatusApproved)
}

func (h *OvertimeHandler) RejectOvertime(c *fiber.Ctx) error {
	return h.updateOvertimeStatus(c, models.StatusRejected)
}

func (h *OvertimeHandler) GetAllOvertime(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	records, err := h.overtimeRepo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *OvertimeHandler) GetOvertimeByUUID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	overtime, err := h.overtimeRepo.FindByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if overtime == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Lembur tidak ditemukan!"})
	}
	return c.Status(fiber.StatusOK).JSON(overtime)
}

func (h *OvertimeHandler) GetPendingOvertime(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	records, err := h.overtimeRepo.FindPending(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *OvertimeHandler) GetMyOvertime(c *fiber.Ctx) error {
	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	records, err := h.overtimeRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if len(records) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Tidak ada data lembur untuk pengguna ini."})
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *OvertimeHandler) UpdateOvertime(c *fiber.Ctx) error {
	var payload models.OvertimeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Payload tidak valid"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}
	if payload.Hours > 0 && util.ExceedsDailyLimit(payload.Hours) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Jam lembur tidak boleh lebih dari 12 jam per hari."})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.overtimeRepo.UpdateByUUID(ctx, c.Params("id"), &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Lembur tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Lembur berhasil diupdate"})
}

func (h *OvertimeHandler) DeleteOvertime(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.overtimeRepo.DeleteByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Lembur tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Lembur berhasil dihapus"})
}
