package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"delapan setengah jam", 8*time.Hour + 30*time.Minute, "8 jam 30 menit"},
		{"nol", 0, "0 jam 0 menit"},
		{"kurang dari satu menit dibulatkan ke bawah", 59 * time.Second, "0 jam 0 menit"},
		{"detik sisa dibuang", 1*time.Hour + 59*time.Minute + 59*time.Second, "1 jam 59 menit"},
		{"tepat satu hari", 24 * time.Hour, "24 jam 0 menit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.d)
			if got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatWIB(t *testing.T) {
	// 2024-01-10 10:30:00 UTC = 17:30:00 WIB
	instant := time.Date(2024, time.January, 10, 10, 30, 0, 0, time.UTC)

	got := FormatWIB(instant)
	want := "2024-01-10 17:30:00"
	if got != want {
		t.Errorf("FormatWIB = %q, want %q", got, want)
	}
}

func TestFormatWIBPtr(t *testing.T) {
	if got := FormatWIBPtr(nil); got != "" {
		t.Errorf("FormatWIBPtr(nil) = %q, want kosong", got)
	}

	instant := time.Date(2024, time.January, 10, 18, 0, 0, 0, time.UTC)
	if got, want := FormatWIBPtr(&instant), "2024-01-11 01:00:00"; got != want {
		t.Errorf("FormatWIBPtr = %q, want %q", got, want)
	}
}

func TestDayBoundsWIB(t *testing.T) {
	// 2024-01-10 20:00 UTC sudah masuk 11 Januari menurut kalender WIB.
	instant := time.Date(2024, time.January, 10, 20, 0, 0, 0, time.UTC)

	start, end := DayBoundsWIB(instant)

	wantStart := time.Date(2024, time.January, 10, 17, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.January, 11, 17, 0, 0, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
	if !instant.After(start) || !instant.Before(end) {
		t.Errorf("instant %v harus berada dalam [%v, %v)", instant, start, end)
	}
}
