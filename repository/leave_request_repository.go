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

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.LeaveRequest, error)
	FindByUUID(ctx context.Context, id string) (*models.LeaveRequest, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error)
	FindPendingByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status, approvedBy string) (*mongo.UpdateResult, error)
	UpdateByUUID(ctx context.Context, id string, payload *models.LeaveRequestUpdatePayload) (*mongo.UpdateResult, error)
	DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	CountPending(ctx context.Context) (int64, error)
}

type leaveRequestRepository struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository() LeaveRequestRepository {
	return &leaveRequestRepository{
		collection: config.GetCollection(config.LeaveRequestCollection),
	}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat pengajuan cuti: %w", err)
	}
	return res, nil
}

func (r *leaveRequestRepository) FindAll(ctx context.Context) ([]models.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data pengajuan cuti: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal decode pengajuan cuti: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequest{}, nil
	}
	return requests, nil
}

func (r *leaveRequestRepository) FindByUUID(ctx context.Context, id string) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"uuid": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan pengajuan cuti: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error) {
	return r.findFiltered(ctx, bson.M{"user_id": userID})
}

func (r *leaveRequestRepository) FindPendingByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error) {
	return r.findFiltered(ctx, bson.M{"user_id": userID, "status": models.StatusPending})
}

func (r *leaveRequestRepository) findFiltered(ctx context.Context, filter bson.M) ([]models.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari pengajuan cuti: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal decode pengajuan cuti: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequest{}, nil
	}
	return requests, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status, approvedBy string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"approved_by": approvedBy,
			"updated_at":  time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"uuid": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) UpdateByUUID(ctx context.Context, id string, payload *models.LeaveRequestUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.StartDate != "" {
		set["start_date"] = payload.StartDate
	}
	if payload.EndDate != "" {
		set["end_date"] = payload.EndDate
	}
	if payload.Reason != "" {
		set["reason"] = payload.Reason
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"uuid": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) DeleteByUUID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"uuid": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung pengajuan cuti tertunda: %w", err)
	}
	return count, nil
}
