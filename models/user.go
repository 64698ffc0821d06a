package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RoleKaryawan = "karyawan"
)

// User adalah data karyawan. ID dipakai internal untuk relasi antar koleksi,
// UUID adalah identitas publik yang dipakai di seluruh API.
type User struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UUID       string             `json:"uuid" bson:"uuid,omitempty"`
	Name       string             `json:"name" bson:"name,omitempty"`
	Email      string             `json:"email" bson:"email,omitempty"`
	Password   string             `json:"-" bson:"password,omitempty"`
	Role       string             `json:"role" bson:"role,omitempty"`
	Position   string             `json:"position" bson:"position,omitempty"`
	Department string             `json:"department" bson:"department,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=50"`
	Role       string `json:"role" validate:"required,oneof=admin karyawan"`
	Position   string `json:"position" validate:"required,max=100"`
	Department string `json:"department" validate:"required,max=100"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdatePayload struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Position   string `json:"position,omitempty" validate:"omitempty,max=100"`
	Department string `json:"department,omitempty" validate:"omitempty,max=100"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50"`
}

// Claims adalah identitas principal hasil validasi token, diletakkan di
// Locals("user") oleh AuthMiddleware dan dibaca seluruh handler.
type Claims struct {
	UserUUID string `json:"user_uuid"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

type DashboardStats struct {
	TotalKaryawan        int64 `json:"total_karyawan"`
	HadirHariIni         int64 `json:"hadir_hari_ini"`
	PengajuanCutiPending int64 `json:"pengajuan_cuti_pending"`
	LemburPending        int64 `json:"lembur_pending"`
}
