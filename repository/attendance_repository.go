package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/models"
)

type AttendanceRepository interface {
	// --- Absensi ---
	Create(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error)
	FindOpenByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Attendance, error)
	Checkout(ctx context.Context, id primitive.ObjectID, checkOutTime time.Time, location string) (*mongo.UpdateResult, error)
	FindAll(ctx context.Context) ([]models.Attendance, error)
	FindByUUID(ctx context.Context, id string) (*models.Attendance, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error)
	FindCheckedInUserIDs(ctx context.Context, start, end time.Time) ([]primitive.ObjectID, error)
	CountCheckinsBetween(ctx context.Context, start, end time.Time) (int64, error)
	UpdateByUUID(ctx context.Context, id string, payload *models.AttendanceUpdatePayload) (*mongo.UpdateResult, error)
	DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error)

	// --- QR kios check-in ---
	CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error)
	FindActiveQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error)
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
	qrCodeCollection     *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
		qrCodeCollection:     config.GetCollection(config.QRCodeCollection),
	}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	res, err := r.attendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		// Duplicate key dibiarkan apa adanya supaya handler bisa
		// menerjemahkannya jadi Conflict lewat IsDuplicate.
		return nil, err
	}
	return res, nil
}

func (r *attendanceRepository) FindOpenByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "status": models.AttendanceCheckedIn}

	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari interval absensi terbuka: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) Checkout(ctx context.Context, id primitive.ObjectID, checkOutTime time.Time, location string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"check_out_time": checkOutTime,
			"location":       location,
			"status":         models.AttendanceCheckedOut,
			"updated_at":     time.Now(),
		},
	}
	res, err := r.attendanceCollection.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("gagal update check-out absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindAll(ctx context.Context) ([]models.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "check_in_time", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data absensi: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode data absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) FindByUUID(ctx context.Context, id string) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.attendanceCollection.FindOne(ctx, bson.M{"uuid": id}).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari absensi berdasarkan uuid: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "check_in_time", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi user: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

// FindCheckedInUserIDs mengembalikan ID user yang punya check-in di rentang
// [start, end). Dipakai sebagai himpunan pengecualian daftar absen.
func (r *attendanceRepository) FindCheckedInUserIDs(ctx context.Context, start, end time.Time) ([]primitive.ObjectID, error) {
	filter := bson.M{
		"check_in_time": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}

	values, err := r.attendanceCollection.Distinct(ctx, "user_id", filter)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil user yang sudah check-in: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *attendanceRepository) CountCheckinsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	filter := bson.M{
		"check_in_time": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	total, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung kehadiran: %w", err)
	}
	return total, nil
}

func (r *attendanceRepository) UpdateByUUID(ctx context.Context, id string, payload *models.AttendanceUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Location != "" {
		set["location"] = payload.Location
	}
	if payload.Status != "" {
		set["status"] = payload.Status
	}

	res, err := r.attendanceCollection.UpdateOne(ctx, bson.M{"uuid": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	res, err := r.attendanceCollection.DeleteOne(ctx, bson.M{"uuid": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	res, err := r.qrCodeCollection.InsertOne(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan QR Code: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindActiveQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error) {
	var qrCode models.QRCode

	filter := bson.M{
		"date":       date,
		"expires_at": bson.M{"$gt": time.Now()},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.qrCodeCollection.FindOne(ctx, filter, opts).Decode(&qrCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari QR Code aktif: %w", err)
	}
	return &qrCode, nil
}
