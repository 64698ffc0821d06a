package util

import "math"

// MaxOvertimeHours adalah batas jam lembur per hari.
const MaxOvertimeHours = 12

// hourCents mengkonversi jam lembur ke seperseratus jam. Input jam dengan
// dua angka desimal jadi bilangan bulat eksak, sehingga perbandingan batas
// dan perhitungan upah bebas dari drift floating point.
func hourCents(hours float64) int64 {
	return int64(math.Round(hours * 100))
}

// ExceedsDailyLimit melaporkan apakah jam lembur melewati batas 12 jam.
// 12.00 masih diterima, 12.01 ditolak.
func ExceedsDailyLimit(hours float64) bool {
	return hourCents(hours) > MaxOvertimeHours*100
}

// OvertimePay menghitung total upah lembur = jam x tarif per jam, eksak
// untuk jam dengan dua angka desimal.
func OvertimePay(hours float64, ratePerHour int64) int64 {
	return hourCents(hours) * ratePerHour / 100
}
