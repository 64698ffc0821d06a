package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCode adalah kode check-in harian untuk kios absensi. Satu kode berlaku
// untuk satu tanggal (WIB) dan kedaluwarsa di akhir hari.
type QRCode struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code,omitempty"`
	Date      string             `json:"date" bson:"date,omitempty"`
	ExpiresAt time.Time          `json:"expires_at" bson:"expires_at,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
}
