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

type LeaveRequestHandler struct {
	leaveRepo repository.LeaveRequestRepository
	userRepo  *repository.UserRepository
}

func NewLeaveRequestHandler(leaveRepo repository.LeaveRequestRepository, userRepo *repository.UserRepository) *LeaveRequestHandler {
	return &LeaveRequestHandler{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
	}
}

// CreateLeaveRequest godoc
// @Summary Buat pengajuan cuti
// @Tags Leave Request
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.LeaveRequestCreatePayload true "Data pengajuan cuti"
// @Success 201 {object} object{msg=string,uuid=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Payload tidak valid"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Semua data harus diisi!", "errors": errs})
	}

	startDate, err := time.Parse(util.DateLayout, payload.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Format tanggal mulai tidak valid"})
	}
	endDate, err := time.Parse(util.DateLayout, payload.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Format tanggal akhir tidak valid"})
	}
	if startDate.After(endDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Tanggal mulai tidak boleh lebih besar dari tanggal akhir."})
	}

	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	newRequest := &models.LeaveRequest{
		UUID:       uuid.New().String(),
		UserID:     user.ID,
		Name:       user.Name,
		Department: user.Department,
		Position:   user.Position,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Reason:     payload.Reason,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	if _, err := h.leaveRepo.Create(ctx, newRequest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":       "Request Created",
		"uuid":      newRequest.UUID,
		"userName":  user.Name,
		"startDate": newRequest.StartDate,
		"endDate":   newRequest.EndDate,
	})
}

// updateRequestStatus menjalankan transisi Pending -> Approved/Rejected.
// Pengajuan yang sudah final tidak boleh diproses ulang.
func (h *LeaveRequestHandler) updateRequestStatus(c *fiber.Ctx, status string) error {
	approver, resErr := resolvePrincipal(c, h.userRepo)
	if approver == nil {
		return resErr
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	request, err := h.leaveRepo.FindByUUID(ctx, c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Permintaan cuti tidak ditemukan!"})
	}

	if models.IsTerminalStatus(request.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Permintaan cuti ini sudah diproses sebelumnya."})
	}

	if _, err := h.leaveRepo.UpdateStatus(ctx, request.UUID, status, approver.Name); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	msg := "Permintaan cuti telah disetujui."
	if status == models.StatusRejected {
		msg = "Permintaan cuti ditolak."
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":         msg,
		"uuid":        request.UUID,
		"userName":    request.Name,
		"startDate":   request.StartDate,
		"endDate":     request.EndDate,
		"reason":      request.Reason,
		"approved_by": approver.Name,
	})
}

func (h *LeaveRequestHandler) ApproveLeaveRequest(c *fiber.Ctx) error {
	return h.updateRequestStatus(c, models.StatusApproved)
}

func (h *LeaveRequestHandler) RejectLeaveRequest(c *fiber.Ctx) error {
	return h.updateRequestStatus(c, models.StatusRejected)
}

func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	requests, err := h.leaveRepo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *LeaveRequestHandler) GetLeaveRequestByUUID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	request, err := h.leaveRepo.FindByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Data tidak ditemukan!"})
	}
	return c.Status(fiber.StatusOK).JSON(request)
}

// GetMyPendingLeaveRequests mengembalikan pengajuan milik caller yang masih Pending.
func (h *LeaveRequestHandler) GetMyPendingLeaveRequests(c *fiber.Ctx) error {
	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	requests, err := h.leaveRepo.FindPendingByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	user, resErr := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return resErr
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	requests, err := h.leaveRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if len(requests) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Tidak ada permintaan cuti untuk pengguna ini."})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *LeaveRequestHandler) UpdateLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Payload tidak valid"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.leaveRepo.UpdateByUUID(ctx, c.Params("id"), &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Data tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Data updated successfully"})
}

func (h *LeaveRequestHandler) DeleteLeaveRequest(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.leaveRepo.DeleteByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Data tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Data deleted successfully"})
}
