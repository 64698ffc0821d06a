package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Absensi-Karyawan/models"
)

// stubAttendanceRepo mengembalikan nilai yang sudah ditentukan, tanpa Mongo.
type stubAttendanceRepo struct {
	updateResult *mongo.UpdateResult
	updateErr    error
}

func (s *stubAttendanceRepo) Create(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindOpenByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) Checkout(ctx context.Context, id primitive.ObjectID, checkOutTime time.Time, location string) (*mongo.UpdateResult, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindAll(ctx context.Context) ([]models.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindByUUID(ctx context.Context, id string) (*models.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindCheckedInUserIDs(ctx context.Context, start, end time.Time) ([]primitive.ObjectID, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) CountCheckinsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (s *stubAttendanceRepo) UpdateByUUID(ctx context.Context, id string, payload *models.AttendanceUpdatePayload) (*mongo.UpdateResult, error) {
	return s.updateResult, s.updateErr
}

func (s *stubAttendanceRepo) DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindActiveQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error) {
	return nil, nil
}

func updateAttendanceRequest(t *testing.T, repo *stubAttendanceRepo, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	h := NewAttendanceHandler(repo, nil, "")
	app := fiber.New()
	app.Put("/attendance/:id", h.UpdateAttendance)

	req := httptest.NewRequest(http.MethodPut, "/attendance/3b241101-e2bb-4255-8caf-4136c566a962", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("gagal decode response body: %v", err)
	}
	return resp, payload
}

func TestUpdateAttendanceStatusDuplicateOpenInterval(t *testing.T) {
	// Patch kembali ke "Checked In" kalah dari interval terbuka milik
	// user yang sama di unique index partial.
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}

	resp, payload := updateAttendanceRequest(t, &stubAttendanceRepo{updateErr: dup}, `{"status":"Checked In"}`)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
	if got, want := payload["msg"], "User sudah melakukan check-in hari ini."; got != want {
		t.Errorf("msg = %q, want %q", got, want)
	}
}

func TestUpdateAttendanceRepoError(t *testing.T) {
	resp, _ := updateAttendanceRequest(t, &stubAttendanceRepo{updateErr: errors.New("connection reset")}, `{"location":"Kantor Pusat"}`)

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusInternalServerError)
	}
}

func TestUpdateAttendanceNotFound(t *testing.T) {
	resp, payload := updateAttendanceRequest(t, &stubAttendanceRepo{updateResult: &mongo.UpdateResult{}}, `{"location":"Kantor Pusat"}`)

	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
	if got, want := payload["msg"], "Data tidak ditemukan!"; got != want {
		t.Errorf("msg = %q, want %q", got, want)
	}
}

func TestUpdateAttendanceSuccess(t *testing.T) {
	repo := &stubAttendanceRepo{updateResult: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}
	resp, payload := updateAttendanceRequest(t, repo, `{"status":"Checked Out"}`)

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if got, want := payload["msg"], "Data updated successfully"; got != want {
		t.Errorf("msg = %q, want %q", got, want)
	}
}
