package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OvertimeRatePerHour adalah tarif lembur tetap (rupiah per jam).
const OvertimeRatePerHour int64 = 30000

// Overtime adalah klaim lembur satu hari kalender. Date disimpan sebagai
// string "2006-01-02" (hari lokal WIB) sehingga keunikan per user per hari
// bisa dijaga oleh unique index (user_id, date).
type Overtime struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UUID         string             `json:"uuid" bson:"uuid,omitempty"`
	UserID       primitive.ObjectID `json:"-" bson:"user_id,omitempty"`
	Name         string             `json:"name" bson:"name,omitempty"`
	Department   string             `json:"department" bson:"department,omitempty"`
	Position     string             `json:"position" bson:"position,omitempty"`
	Date         string             `json:"date" bson:"date,omitempty"`
	Hours        float64            `json:"hours" bson:"hours,omitempty"`
	Description  string             `json:"description" bson:"description,omitempty"`
	OvertimeRate int64              `json:"overtime_rate" bson:"overtime_rate,omitempty"`
	TotalPayment int64              `json:"total_payment" bson:"total_payment,omitempty"`
	Status       string             `json:"status" bson:"status,omitempty"`
	ApprovedBy   string             `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	PaidAt       *time.Time         `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type OvertimeCreatePayload struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=5,max=500"`
}

type OvertimeUpdatePayload struct {
	Date        string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Hours       float64 `json:"hours,omitempty" validate:"omitempty,gt=0"`
	Description string  `json:"description,omitempty" validate:"omitempty,min=5,max=500"`
}
