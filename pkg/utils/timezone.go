package util

import (
	"fmt"
	"time"
)

// WIB adalah zona tampilan tetap UTC+7. Semua timestamp disimpan UTC dan
// hanya dirender ke WIB di boundary API, termasuk batas hari untuk
// perhitungan absensi dan keunikan lembur per tanggal.
var WIB = time.FixedZone("WIB", 7*60*60)

const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// FormatWIB merender sebuah instant ke waktu lokal WIB dengan presisi detik.
func FormatWIB(t time.Time) string {
	return t.In(WIB).Format(TimestampLayout)
}

// FormatWIBPtr seperti FormatWIB tetapi aman untuk timestamp nullable.
func FormatWIBPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatWIB(*t)
}

// TodayWIB mengembalikan tanggal hari ini menurut kalender WIB.
func TodayWIB() string {
	return time.Now().In(WIB).Format(DateLayout)
}

// DayBoundsWIB mengembalikan batas [awal, akhir) hari kalender WIB yang
// memuat t, sebagai instant UTC yang siap dipakai di query rentang.
func DayBoundsWIB(t time.Time) (time.Time, time.Time) {
	local := t.In(WIB)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, WIB)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}

// FormatDuration merender durasi kerja sebagai "X jam Y menit".
// Pembagian dibulatkan ke bawah, bukan rounding.
func FormatDuration(d time.Duration) string {
	totalMinutes := int64(d / time.Minute)
	return fmt.Sprintf("%d jam %d menit", totalMinutes/60, totalMinutes%60)
}
