package models

// Struct di bawah ini hanya dipakai oleh anotasi swagger supaya contoh
// response di dokumentasi API punya bentuk yang jelas.

type MsgResponse struct {
	Msg string `json:"msg" example:"Data updated successfully"`
}

type CheckInSuccessResponse struct {
	Msg         string `json:"msg" example:"Check-in berhasil!"`
	UserName    string `json:"userName" example:"Budi Santoso"`
	CheckInTime string `json:"checkInTime" example:"2024-01-10 09:00:00"`
}

type CheckOutSuccessResponse struct {
	Msg          string `json:"msg" example:"Check-out berhasil!"`
	UserName     string `json:"userName" example:"Budi Santoso"`
	CheckOutTime string `json:"checkOutTime" example:"2024-01-10 17:30:00"`
	TotalJam     string `json:"totaljam" example:"8 jam 30 menit"`
}

type LoginSuccessResponse struct {
	Msg   string `json:"msg" example:"Login berhasil"`
	Token string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UUID  string `json:"uuid" example:"4f2cbf3d-2b4f-43d4-8f2e-9e2f1a3b5c6d"`
	Role  string `json:"role" example:"karyawan"`
}

type AbsentUsersResponse struct {
	Msg  string       `json:"msg" example:"Karyawan yang tidak hadir hari ini"`
	Data []AbsentUser `json:"data"`
}

type ErrorResponse struct {
	Msg string `json:"msg" example:"User Tidak Ditemukan!"`
}
