package models

import (
	"testing"
	"time"
)

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, false},
		{StatusApproved, true},
		{StatusRejected, true},
		{"", false},
		{"pending", false},
	}

	for _, tt := range tests {
		if got := IsTerminalStatus(tt.status); got != tt.want {
			t.Errorf("IsTerminalStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAttendanceIsOpen(t *testing.T) {
	open := Attendance{Status: AttendanceCheckedIn}
	if !open.IsOpen() {
		t.Error("record tanpa check_out_time harus dianggap terbuka")
	}

	now := time.Now()
	closed := Attendance{Status: AttendanceCheckedOut, CheckOutTime: &now}
	if closed.IsOpen() {
		t.Error("record dengan check_out_time tidak boleh dianggap terbuka")
	}
}

func TestClaimsIsAdmin(t *testing.T) {
	admin := Claims{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Error("role admin harus dikenali sebagai admin")
	}

	karyawan := Claims{Role: RoleKaryawan}
	if karyawan.IsAdmin() {
		t.Error("role karyawan tidak boleh dikenali sebagai admin")
	}
}
