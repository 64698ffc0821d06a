package util

import (
	"strings"
	"testing"
)

type samplePayload struct {
	Email  string  `validate:"required,email"`
	Reason string  `validate:"required,min=5"`
	Date   string  `validate:"required,datetime=2006-01-02"`
	Hours  float64 `validate:"required,gt=0"`
}

func TestValidateStructValid(t *testing.T) {
	payload := samplePayload{
		Email:  "budi.santoso@gmail.com",
		Reason: "Acara keluarga",
		Date:   "2024-01-10",
		Hours:  2.5,
	}

	if errs := ValidateStruct(payload); errs != nil {
		t.Errorf("payload valid tidak boleh menghasilkan error, dapat %d", len(errs))
	}
}

func TestValidateStructMessages(t *testing.T) {
	payload := samplePayload{
		Email:  "bukan-email",
		Reason: "ok",
		Date:   "10-01-2024",
		Hours:  0,
	}

	errs := ValidateStruct(payload)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d", len(errs))
	}

	byField := make(map[string]*FieldError)
	for _, e := range errs {
		byField[e.Field] = e
	}

	if e := byField["Email"]; e == nil || e.Msg != "Format email tidak valid." {
		t.Errorf("pesan Email salah: %+v", e)
	}
	if e := byField["Reason"]; e == nil || !strings.Contains(e.Msg, "minimal 5") {
		t.Errorf("pesan Reason salah: %+v", e)
	}
	if e := byField["Date"]; e == nil || !strings.Contains(e.Msg, "2006-01-02") {
		t.Errorf("pesan Date salah: %+v", e)
	}
	if e := byField["Hours"]; e == nil || e.Tag != "required" {
		t.Errorf("Hours bernilai nol harus gagal di tag required: %+v", e)
	}
}
