package rekap

import (
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

// RangeRequest is the inclusive date range every report runs over.
type RangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if r.StartDate != "" && r.EndDate != "" {
		startDate, startOK := validator.IsValidDate(r.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}

		endDate, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}

		if startOK && endOK && startDate.After(endDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Start returns the parsed start date. Call only after Validate.
func (r *RangeRequest) Start() time.Time {
	t, _ := time.Parse("2006-01-02", r.StartDate)
	return t
}

// End returns the parsed end date. Call only after Validate.
func (r *RangeRequest) End() time.Time {
	t, _ := time.Parse("2006-01-02", r.EndDate)
	return t
}

// TabelRequest adds the optional employee-set filters to a range.
type TabelRequest struct {
	RangeRequest
	IDOpd     *int64
	IDJabatan *int64
	IDPangkat *int64
}

// RekapPersentaseRow is one OPD's totals across the whole range. The
// percentage denominator is total_target = total_pegawai * hari_kerja;
// a zero denominator reports 0.0 everywhere.
type RekapPersentaseRow struct {
	NamaOpd         string `json:"nama_opd"`
	TotalPegawai    int    `json:"total_pegawai"`
	HariKerja       int    `json:"hari_kerja"`
	TotalTarget     int    `json:"total_target"`
	Biasa           int    `json:"biasa"`
	Khusus          int    `json:"khusus"`
	Izin            int    `json:"izin"`
	TanpaKeterangan int    `json:"tanpa_keterangan"`

	PersenHadir           float64 `json:"persen_hadir"`
	PersenBiasa           float64 `json:"persen_biasa"`
	PersenKhusus          float64 `json:"persen_khusus"`
	PersenIzin            float64 `json:"persen_izin"`
	PersenTanpaKeterangan float64 `json:"persen_tanpa_keterangan"`
}

// ClassPercent is a per-classification percentage breakdown, 1 decimal.
type ClassPercent struct {
	Biasa           float64 `json:"biasa"`
	Khusus          float64 `json:"khusus"`
	Izin            float64 `json:"izin"`
	TanpaKeterangan float64 `json:"tanpa_keterangan"`
}

// TanggalCounts is one working day's classification counts inside an OPD.
type TanggalCounts struct {
	Tanggal         string `json:"tanggal"`
	Biasa           int    `json:"biasa"`
	Khusus          int    `json:"khusus"`
	Izin            int    `json:"izin"`
	TanpaKeterangan int    `json:"tanpa_keterangan"`
}

// PegawaiSummary is the per-employee detail roll-up.
type PegawaiSummary struct {
	IDPegawai       int64        `json:"id_pegawai"`
	NamaPegawai     string       `json:"nama_pegawai"`
	NIPPegawai      string       `json:"nip_pegawai"`
	Biasa           int          `json:"biasa"`
	Khusus          int          `json:"khusus"`
	Izin            int          `json:"izin"`
	TanpaKeterangan int          `json:"tanpa_keterangan"`
	Persentase      ClassPercent `json:"persentase"`
}

// RekapTabelOpd is one OPD's per-date breakdown, dates ascending, plus the
// per-employee summary.
type RekapTabelOpd struct {
	NamaOpd       string           `json:"nama_opd"`
	JumlahPegawai int              `json:"jumlah_pegawai"`
	PerTanggal    []TanggalCounts  `json:"per_tanggal"`
	Summary       []PegawaiSummary `json:"summary"`
}

type RekapTabelResult struct {
	HariKerja []string        `json:"hari_kerja"`
	HariLibur []string        `json:"hari_libur"`
	Data      []RekapTabelOpd `json:"data"`
}
