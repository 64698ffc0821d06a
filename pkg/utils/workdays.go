package util

import (
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultWorkdayRule adalah jadwal kerja Senin-Jumat.
const DefaultWorkdayRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

// IsWorkday melaporkan apakah tanggal (kalender WIB) yang memuat t jatuh
// pada hari kerja menurut aturan RRULE. Dtstart dipatok di hari Senin
// supaya BYDAY-lah yang menentukan kemunculan, bukan tanggal mulai.
func IsWorkday(rule string, t time.Time) (bool, error) {
	rOption, err := rrule.StrToROption(rule)
	if err != nil {
		return false, err
	}
	rOption.Dtstart = time.Date(2000, time.January, 3, 0, 0, 0, 0, WIB)

	rr, err := rrule.NewRRule(*rOption)
	if err != nil {
		return false, err
	}

	start, end := DayBoundsWIB(t)
	occurrences := rr.Between(start, end.Add(-time.Second), true)
	return len(occurrences) > 0, nil
}
