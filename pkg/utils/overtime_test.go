package util

import "testing"

func TestExceedsDailyLimit(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  bool
	}{
		{"di bawah batas", 8, false},
		{"tepat di batas", 12.00, false},
		{"sedikit di atas batas", 12.01, true},
		{"jauh di atas batas", 24, true},
		{"pecahan aman dari drift float", 11.99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExceedsDailyLimit(tt.hours); got != tt.want {
				t.Errorf("ExceedsDailyLimit(%v) = %v, want %v", tt.hours, got, tt.want)
			}
		})
	}
}

func TestOvertimePay(t *testing.T) {
	const rate = int64(30000)

	tests := []struct {
		name  string
		hours float64
		want  int64
	}{
		{"jam bulat", 2, 60000},
		{"setengah jam", 2.5, 75000},
		{"dua desimal eksak", 1.15, 34500},
		{"representasi float tidak eksak", 0.29, 8700},
		{"batas maksimal", 12, 360000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OvertimePay(tt.hours, rate); got != tt.want {
				t.Errorf("OvertimePay(%v, %d) = %d, want %d", tt.hours, rate, got, tt.want)
			}
		})
	}
}
