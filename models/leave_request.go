package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// IsTerminalStatus melaporkan apakah sebuah status pengajuan sudah final.
// Pengajuan yang sudah Approved/Rejected tidak boleh diproses ulang.
func IsTerminalStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// LeaveRequest adalah pengajuan cuti dengan snapshot data user saat dibuat.
type LeaveRequest struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UUID       string             `json:"uuid" bson:"uuid,omitempty"`
	UserID     primitive.ObjectID `json:"-" bson:"user_id,omitempty"`
	Name       string             `json:"name" bson:"name,omitempty"`
	Department string             `json:"department" bson:"department,omitempty"`
	Position   string             `json:"position" bson:"position,omitempty"`
	StartDate  string             `json:"start_date" bson:"start_date,omitempty"`
	EndDate    string             `json:"end_date" bson:"end_date,omitempty"`
	Reason     string             `json:"reason" bson:"reason,omitempty"`
	Status     string             `json:"status" bson:"status,omitempty"`
	ApprovedBy string             `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type LeaveRequestCreatePayload struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,min=5,max=500"`
}

type LeaveRequestUpdatePayload struct {
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Reason    string `json:"reason,omitempty" validate:"omitempty,min=5,max=500"`
}
