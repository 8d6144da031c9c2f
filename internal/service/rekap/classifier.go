package rekap

import (
	"strconv"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

// Classification is the outcome for one employee on one working day.
type Classification int

const (
	ClassTanpaKeterangan Classification = iota
	ClassIzin
	ClassBiasa
	ClassKhusus
)

// DayResult carries the classification and, when the day has scoring and
// the employee checked in late, the whole-minute lateness.
type DayResult struct {
	Class           Classification
	Late            bool
	LatenessMinutes int
}

func (r DayResult) Hadir() bool {
	return r.Class == ClassBiasa || r.Class == ClassKhusus
}

func dayKey(idPegawai int64, date string) string {
	return strconv.FormatInt(idPegawai, 10) + "|" + date
}

// PresensiIndex maps employee+day to their check-in. When an employee has
// several rows on one day the earliest recognized one wins; rows with an
// unrecognized category never enter the index.
func (e *Engine) PresensiIndex(rows []presensi.Presensi) map[string]presensi.Presensi {
	index := make(map[string]presensi.Presensi, len(rows))
	for _, row := range rows {
		if !row.HasRecognizedCategory() {
			continue
		}
		date := time.UnixMilli(row.JamMasuk).In(e.loc).Format(dateLayout)
		key := dayKey(row.IDPegawai, date)
		if existing, ok := index[key]; ok && existing.JamMasuk <= row.JamMasuk {
			continue
		}
		index[key] = row
	}
	return index
}

// IzinIndex expands verified leave ranges into per-day membership. Rows with
// a malformed start date are skipped; a malformed or empty end date shrinks
// the range to its start day. Unverified rows never arrive here, the
// repository filters them.
func (e *Engine) IzinIndex(rows []izin.Izin) map[string]bool {
	index := make(map[string]bool)
	for _, row := range rows {
		start, ok := validator.ParseLegacyDate(row.TanggalIzin)
		if !ok {
			continue
		}
		end, ok := validator.ParseLegacyDate(row.TanggalSelesai)
		if !ok || end.Before(start) {
			end = start
		}
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			index[dayKey(row.IDPegawai, day.Format(dateLayout))] = true
		}
	}
	return index
}

// Classify resolves one employee's day. A recognized check-in always wins
// over an approved leave covering the same day; with neither the day is
// unexplained. Lateness applies only to scored days and only when the
// check-in instant is strictly after the cutoff.
func (e *Engine) Classify(idPegawai int64, date string, threshold DailyThreshold, presensiIdx map[string]presensi.Presensi, izinIdx map[string]bool) DayResult {
	key := dayKey(idPegawai, date)

	if row, ok := presensiIdx[key]; ok {
		result := DayResult{Class: ClassBiasa}
		if row.IsKhusus() {
			result.Class = ClassKhusus
		}
		if threshold.HasScoring {
			result.Late, result.LatenessMinutes = e.lateness(row.JamMasuk, date, threshold.TimeOfDay)
		}
		return result
	}

	if izinIdx[key] {
		return DayResult{Class: ClassIzin}
	}
	return DayResult{Class: ClassTanpaKeterangan}
}

// LatenessFor scores a single check-in against a day's resolved threshold.
func (e *Engine) LatenessFor(jamMasuk int64, date string, threshold DailyThreshold) (bool, int) {
	if !threshold.HasScoring {
		return false, 0
	}
	return e.lateness(jamMasuk, date, threshold.TimeOfDay)
}

// lateness compares the check-in epoch against the day's cutoff in the civil
// zone. Arriving exactly on the cutoff is on time; minutes are floored, so
// anything under a full minute past the cutoff reports zero.
func (e *Engine) lateness(jamMasuk int64, date, timeOfDay string) (bool, int) {
	day, err := time.ParseInLocation(dateLayout, date, e.loc)
	if err != nil {
		return false, 0
	}
	cutoff, err := e.ThresholdInstant(day, timeOfDay)
	if err != nil {
		return false, 0
	}
	clockIn := time.UnixMilli(jamMasuk).In(e.loc)
	if !clockIn.After(cutoff) {
		return false, 0
	}
	deltaMillis := clockIn.UnixMilli() - cutoff.UnixMilli()
	return true, int(deltaMillis / 60000)
}
