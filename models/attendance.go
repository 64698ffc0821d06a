package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttendanceCheckedIn  = "Checked In"
	AttendanceCheckedOut = "Checked Out"
)

// Attendance adalah satu interval check-in -> check-out. Name, Department,
// dan Position adalah salinan nilai user saat check-in, bukan referensi,
// supaya perubahan data user tidak mengubah riwayat absensi.
type Attendance struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UUID         string             `json:"uuid" bson:"uuid,omitempty"`
	UserID       primitive.ObjectID `json:"-" bson:"user_id,omitempty"`
	Name         string             `json:"name" bson:"name,omitempty"`
	Department   string             `json:"department" bson:"department,omitempty"`
	Position     string             `json:"position" bson:"position,omitempty"`
	CheckInTime  time.Time          `json:"-" bson:"check_in_time,omitempty"`
	CheckOutTime *time.Time         `json:"-" bson:"check_out_time"`
	Location     string             `json:"location" bson:"location,omitempty"`
	Status       string             `json:"status" bson:"status,omitempty"`
	CreatedAt    time.Time          `json:"-" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"-" bson:"updated_at,omitempty"`
}

// IsOpen melaporkan apakah record ini masih interval terbuka (belum check-out).
func (a *Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}

type AttendanceCheckPayload struct {
	CheckOut    bool   `json:"check_out"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	QRCodeValue string `json:"qr_code_value" validate:"omitempty,uuid4"`
}

type AttendanceUpdatePayload struct {
	Location string `json:"location,omitempty" validate:"omitempty,max=255"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof='Checked In' 'Checked Out'"`
}

// AttendanceResponse adalah bentuk JSON untuk pembacaan data absensi:
// timestamp dirender ke WIB dengan format "2006-01-02 15:04:05".
type AttendanceResponse struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	Location     string `json:"location"`
	Status       string `json:"status"`
}

// AbsentUser adalah proyeksi user untuk daftar karyawan yang belum hadir.
type AbsentUser struct {
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Department string `json:"department" bson:"department"`
	Position   string `json:"position" bson:"position"`
}
