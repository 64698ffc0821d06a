package repository

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicate(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error collection: absensi-karyawan-db.attendances"},
		},
	}
	if !IsDuplicate(duplicate) {
		t.Error("write error 11000 harus dikenali sebagai duplikat")
	}

	wrapped := fmt.Errorf("gagal menyimpan absensi: %w", duplicate)
	if !IsDuplicate(wrapped) {
		t.Error("error duplikat yang dibungkus harus tetap dikenali")
	}

	other := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 121, Message: "Document failed validation"},
		},
	}
	if IsDuplicate(other) {
		t.Error("write error selain pelanggaran unique index tidak boleh dikenali sebagai duplikat")
	}

	if IsDuplicate(errors.New("connection reset")) {
		t.Error("error biasa tidak boleh dikenali sebagai duplikat")
	}
	if IsDuplicate(nil) {
		t.Error("nil tidak boleh dikenali sebagai duplikat")
	}
}
