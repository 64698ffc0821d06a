package util

import (
	"testing"
	"time"
)

func TestIsWorkday(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"senin", time.Date(2024, time.January, 8, 9, 0, 0, 0, WIB), true},
		{"jumat", time.Date(2024, time.January, 12, 9, 0, 0, 0, WIB), true},
		{"sabtu", time.Date(2024, time.January, 13, 9, 0, 0, 0, WIB), false},
		{"minggu", time.Date(2024, time.January, 14, 9, 0, 0, 0, WIB), false},
		// 2024-01-12 18:00 UTC = Sabtu 01:00 WIB, kalender WIB yang dipakai.
		{"batas hari mengikuti WIB", time.Date(2024, time.January, 12, 18, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsWorkday(DefaultWorkdayRule, tt.t)
			if err != nil {
				t.Fatalf("IsWorkday returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsWorkday(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestIsWorkdayCustomRule(t *testing.T) {
	// Jadwal shift Senin-Sabtu.
	rule := "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR,SA"

	saturday := time.Date(2024, time.January, 13, 9, 0, 0, 0, WIB)
	got, err := IsWorkday(rule, saturday)
	if err != nil {
		t.Fatalf("IsWorkday returned error: %v", err)
	}
	if !got {
		t.Errorf("sabtu harus hari kerja untuk rule %q", rule)
	}
}

func TestIsWorkdayInvalidRule(t *testing.T) {
	if _, err := IsWorkday("FREQ=BUKANFREKUENSI", time.Now()); err == nil {
		t.Error("rule tidak valid harus menghasilkan error")
	}
}
