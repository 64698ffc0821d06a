package handlers

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"Sistem-Absensi-Karyawan/models"
	util "Sistem-Absensi-Karyawan/pkg/utils"
	"Sistem-Absensi-Karyawan/repository"
)

type AttendanceHandler struct {
	repo        repository.AttendanceRepository
	userRepo    *repository.UserRepository
	workdayRule string
}

func NewAttendanceHandler(repo repository.AttendanceRepository, userRepo *repository.UserRepository, workdayRule string) *AttendanceHandler {
	return &AttendanceHandler{
		repo:        repo,
		userRepo:    userRepo,
		workdayRule: workdayRule,
	}
}

func attendanceResponse(att *models.Attendance) models.AttendanceResponse {
	return models.AttendanceResponse{
		UUID:         att.UUID,
		Name:         att.Name,
		Department:   att.Department,
		Position:     att.Position,
		CheckInTime:  util.FormatWIB(att.CheckInTime),
		CheckOutTime: util.FormatWIBPtr(att.CheckOutTime),
		Location:     att.Location,
		Status:       att.Status,
	}
}

// Check godoc
// @Summary Check-in / check-out absensi
// @Description Tanpa check_out membuat interval absensi baru; dengan check_out menutup interval yang masih terbuka dan menghitung durasi kerja.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.AttendanceCheckPayload true "Data check-in/check-out"
// @Success 200 {object} models.CheckOutSuccessResponse
// @Failure 400 {object} models.ErrorResponse "Sudah check-in / belum check-in / waktu tidak valid"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/check [post]
func (h *AttendanceHandler) Check(c *fiber.Ctx) error {
	var payload models.AttendanceCheckPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Payload tidak valid: " + err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	user, err := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	if payload.QRCodeValue != "" {
		qrCode, err := h.repo.FindActiveQRCodeByDate(ctx, util.TodayWIB())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
		}
		if qrCode == nil || qrCode.Code != payload.QRCodeValue {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "QR Code tidak berlaku untuk hari ini."})
		}
	}

	location := payload.Location
	if location == "" {
		location = "Unknown"
	}

	open, err := h.repo.FindOpenByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	if !payload.CheckOut {
		if open != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "User sudah melakukan check-in hari ini."})
		}

		checkInTime := time.Now().UTC()
		attendance := &models.Attendance{
			UUID:        uuid.New().String(),
			UserID:      user.ID,
			Name:        user.Name,
			Department:  user.Department,
			Position:    user.Position,
			CheckInTime: checkInTime,
			Location:    location,
			Status:      models.AttendanceCheckedIn,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if _, err := h.repo.Create(ctx, attendance); err != nil {
			// Index partial menangkap race dua check-in bersamaan.
			if repository.IsDuplicate(err) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "User sudah melakukan check-in hari ini."})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"msg":         "Check-in berhasil!",
			"userName":    user.Name,
			"checkInTime": util.FormatWIB(checkInTime),
		})
	}

	if open == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "User belum melakukan check-in."})
	}

	checkOutTime := time.Now().UTC()
	if _, err := h.repo.Checkout(ctx, open.ID, checkOutTime, location); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	elapsed := checkOutTime.Sub(open.CheckInTime)
	if elapsed <= 0 {
		// Anomali jam (clock skew). Nilai tetap dikembalikan untuk diagnosa.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg":          "Waktu check-out tidak valid. Pastikan waktu check-out lebih besar dari waktu check-in.",
			"userName":     user.Name,
			"checkOutTime": util.FormatWIB(checkOutTime),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":          "Check-out berhasil!",
		"userName":     user.Name,
		"checkOutTime": util.FormatWIB(checkOutTime),
		"totaljam":     util.FormatDuration(elapsed),
	})
}

func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	records, err := h.repo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	responses := make([]models.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, attendanceResponse(&records[i]))
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

func (h *AttendanceHandler) GetAttendanceByUUID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	attendance, err := h.repo.FindByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if attendance == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Data tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceResponse(attendance))
}

func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Payload tidak valid"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Validasi gagal", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.repo.UpdateByUUID(ctx, c.Params("id"), &payload)
	if err != nil {
		// Mengembalikan status ke "Checked In" bisa bentrok dengan interval
		// terbuka milik user yang sama.
		if repository.IsDuplicate(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "User sudah melakukan check-in hari ini."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Data tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Data updated successfully"})
}

func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	result, err := h.repo.DeleteByUUID(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Data tidak ditemukan!"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Data deleted successfully"})
}

// GetAbsentToday mengembalikan komplemen dari user yang sudah check-in hari
// ini (kalender WIB) terhadap seluruh direktori karyawan. Di luar hari kerja
// atau saat libur nasional daftar selalu kosong.
func (h *AttendanceHandler) GetAbsentToday(c *fiber.Ctx) error {
	now := time.Now()

	workday, err := util.IsWorkday(h.workdayRule, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Aturan hari kerja tidak valid: " + err.Error()})
	}
	if !workday {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"msg":  "Hari ini bukan hari kerja",
			"data": []models.AbsentUser{},
		})
	}

	// Libur nasional dicek best-effort; kegagalan API tidak memblokir.
	if holidayMap, err := util.GetHolidayMap(now.In(util.WIB).Format("2006")); err == nil {
		if holidayMap[util.TodayWIB()] {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"msg":  "Hari ini libur nasional",
				"data": []models.AbsentUser{},
			})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	start, end := util.DayBoundsWIB(now)
	attendedIDs, err := h.repo.FindCheckedInUserIDs(ctx, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Terjadi kesalahan pada server: " + err.Error()})
	}

	absentUsers, err := h.userRepo.FindUsersNotIn(ctx, attendedIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Terjadi kesalahan pada server: " + err.Error()})
	}

	if len(absentUsers) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Tidak ada karyawan yang tidak hadir hari ini"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":  "Karyawan yang tidak hadir hari ini",
		"data": absentUsers,
	})
}

func (h *AttendanceHandler) GetMyAttendance(c *fiber.Ctx) error {
	user, err := resolvePrincipal(c, h.userRepo)
	if user == nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	records, err := h.repo.FindByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}
	if len(records) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Tidak ada data absensi untuk user ini."})
	}

	responses := make([]models.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, attendanceResponse(&records[i]))
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

// GenerateQRCode membuat kode check-in harian untuk kios absensi.
// Kode berlaku sampai akhir hari WIB.
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	_, expiresAt := util.DayBoundsWIB(time.Now())

	newQRCode := &models.QRCode{
		Code:      uuid.New().String(),
		Date:      util.TodayWIB(),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), repoTimeout)
	defer cancel()

	if _, err := h.repo.CreateQRCode(ctx, newQRCode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
	}

	png, err := qrcode.Encode(newQRCode.Code, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Gagal membuat gambar QR Code."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":           "QR Code berhasil dibuat",
		"qr_code_image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"expires_at":    expiresAt,
	})
}
