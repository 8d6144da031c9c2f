package rekap

import (
	"math"
	"sort"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
)

// UnknownOpdName groups employees whose OPD reference is missing.
const UnknownOpdName = "Tidak Diketahui"

// Counts is a mutually-exclusive classification tally. For any scope the
// four buckets always sum to employees times working days.
type Counts struct {
	Biasa           int
	Khusus          int
	Izin            int
	TanpaKeterangan int
}

func (c *Counts) Add(class Classification) {
	switch class {
	case ClassBiasa:
		c.Biasa++
	case ClassKhusus:
		c.Khusus++
	case ClassIzin:
		c.Izin++
	default:
		c.TanpaKeterangan++
	}
}

func (c Counts) Hadir() int {
	return c.Biasa + c.Khusus
}

func (c Counts) Total() int {
	return c.Biasa + c.Khusus + c.Izin + c.TanpaKeterangan
}

// DateAggregate is one working day's tally within a group.
type DateAggregate struct {
	Tanggal string
	Counts  Counts
}

// PegawaiAggregate is one employee's tally across all working days.
type PegawaiAggregate struct {
	IDPegawai   int64
	NamaPegawai string
	NIPPegawai  string
	Counts      Counts
}

// GroupAggregate is one OPD's complete tally: range totals, per-date
// breakdown in working-day order, and per-employee detail sorted by name.
type GroupAggregate struct {
	NamaOpd      string
	TotalPegawai int
	Totals       Counts
	PerDate      []DateAggregate
	PerPegawai   []PegawaiAggregate
}

// Aggregate classifies every employee on every working day and rolls the
// results up per OPD. Attendance and leave rows for employees outside the
// given set are ignored. Groups come back sorted by OPD name, with the
// unknown-OPD group ordered like any other.
func (e *Engine) Aggregate(employees []pegawai.Pegawai, workingDays []string, presensiIdx map[string]presensi.Presensi, izinIdx map[string]bool) []GroupAggregate {
	groups := make(map[string]*GroupAggregate)

	for _, emp := range employees {
		opdName := UnknownOpdName
		if emp.NamaOpd != nil && *emp.NamaOpd != "" {
			opdName = *emp.NamaOpd
		}

		group, ok := groups[opdName]
		if !ok {
			group = &GroupAggregate{NamaOpd: opdName}
			for _, date := range workingDays {
				group.PerDate = append(group.PerDate, DateAggregate{Tanggal: date})
			}
			groups[opdName] = group
		}
		group.TotalPegawai++

		agg := PegawaiAggregate{
			IDPegawai:   emp.IDPegawai,
			NamaPegawai: emp.NamaPegawai,
			NIPPegawai:  emp.NIPPegawai,
		}
		for i, date := range workingDays {
			result := e.Classify(emp.IDPegawai, date, DailyThreshold{}, presensiIdx, izinIdx)
			agg.Counts.Add(result.Class)
			group.Totals.Add(result.Class)
			group.PerDate[i].Counts.Add(result.Class)
		}
		group.PerPegawai = append(group.PerPegawai, agg)
	}

	out := make([]GroupAggregate, 0, len(groups))
	for _, group := range groups {
		sort.Slice(group.PerPegawai, func(i, j int) bool {
			left, right := group.PerPegawai[i], group.PerPegawai[j]
			if left.NamaPegawai != right.NamaPegawai {
				return left.NamaPegawai < right.NamaPegawai
			}
			return left.IDPegawai < right.IDPegawai
		})
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NamaOpd < out[j].NamaOpd
	})
	return out
}

// Percent computes count over denominator as a percentage rounded to one
// decimal. A zero denominator reports 0.0, never NaN.
func Percent(count, denominator int) float64 {
	if denominator == 0 {
		return 0.0
	}
	return math.Round(float64(count)/float64(denominator)*1000) / 10
}
