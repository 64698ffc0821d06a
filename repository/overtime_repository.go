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
	util "Sistem-Absensi-Karyawan/pkg/utils"
)

type OvertimeRepository interface {
	Create(ctx context.Context, overtime *models.Overtime) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.Overtime, error)
	FindByUUID(ctx context.Context, id string) (*models.Overtime, error)
	FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Overtime, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Overtime, error)
	FindPending(ctx context.Context) ([]models.Overtime, error)
	UpdateStatus(ctx context.Context, id string, status, approvedBy string) (*mongo.UpdateResult, error)
	UpdateByUUID(ctx context.Context, id string, payload *models.OvertimeUpdatePayload) (*mongo.UpdateResult, error)
	DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	CountPending(ctx context.Context) (int64, error)
}

type overtimeRepository struct {
	collection *mongo.Collection
}

func NewOvertimeRepository() OvertimeRepository {
	return &overtimeRepository{
		collection: config.GetCollection(config.OvertimeCollection),
	}
}

func (r *overtimeRepository) Create(ctx context.Context, overtime *models.Overtime) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, overtime)
	if err != nil {
		// Pelanggaran unique index (user_id, date) diteruskan apa adanya,
		// handler menerjemahkannya jadi Conflict lewat IsDuplicate.
		return nil, err
	}
	return res, nil
}

func (r *overtimeRepository) FindAll(ctx context.Context) ([]models.Overtime, error) {
	return r.findFiltered(ctx, bson.M{})
}

func (r *overtimeRepository) FindByUUID(ctx context.Context, id string) (*models.Overtime, error) {
	var overtime models.Overtime
	err := r.collection.FindOne(ctx, bson.M{"uuid": id}).Decode(&overtime)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan lembur: %w", err)
	}
	return &overtime, nil
}

func (r *overtimeRepository) FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Overtime, error) {
	var overtime models.Overtime
	filter := bson.M{"user_id": userID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&overtime)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari lembur berdasarkan user dan tanggal: %w", err)
	}
	return &overtime, nil
}

func (r *overtimeRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Overtime, error) {
	return r.findFiltered(ctx, bson.M{"user_id": userID})
}

func (r *overtimeRepository) FindPending(ctx context.Context) ([]models.Overtime, error) {
	return r.findFiltered(ctx, bson.M{"status": models.StatusPending})
}

func (r *overtimeRepository) findFiltered(ctx context.Context, filter bson.M) ([]models.Overtime, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data lembur: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Overtime
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode data lembur: %w", err)
	}

	if len(results) == 0 {
		return []models.Overtime{}, nil
	}
	return results, nil
}

func (r *overtimeRepository) UpdateStatus(ctx context.Context, id string, status, approvedBy string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"approved_by": approvedBy,
			"updated_at":  time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"uuid": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status lembur: %w", err)
	}
	return result, nil
}

func (r *overtimeRepository) UpdateByUUID(ctx context.Context, id string, payload *models.OvertimeUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Date != "" {
		set["date"] = payload.Date
	}
	if payload.Hours > 0 {
		set["hours"] = payload.Hours
		set["total_payment"] = util.OvertimePay(payload.Hours, models.OvertimeRatePerHour)
	}
	if payload.Description != "" {
		set["description"] = payload.Description
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"uuid": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate lembur: %w", err)
	}
	return result, nil
}

func (r *overtimeRepository) DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"uuid": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus lembur: %w", err)
	}
	return result, nil
}

func (r *overtimeRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung lembur tertunda: %w", err)
	}
	return count, nil
}
