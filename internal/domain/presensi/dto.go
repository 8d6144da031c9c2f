package presensi

import (
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

// ListRequest selects one calendar day of attendance rows. Date defaults to
// today in the civil timezone when empty.
type ListRequest struct {
	Date      string
	IDOpd     *int64
	IDPegawai *int64
	Page      int
	Limit     int
	Search    string
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be positive",
		})
	}
	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInRequest struct {
	IDPegawai int64  `json:"id_pegawai"`
	KetMasuk  string `json:"ket_masuk"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IDPegawai <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id_pegawai",
			Message: "id_pegawai is required",
		})
	}
	if validator.IsEmpty(r.KetMasuk) {
		errs = append(errs, validator.ValidationError{
			Field:   "ket_masuk",
			Message: "ket_masuk is required",
		})
	} else if !(Presensi{KetMasuk: r.KetMasuk}).HasRecognizedCategory() {
		errs = append(errs, validator.ValidationError{
			Field:   "ket_masuk",
			Message: "ket_masuk must start with Biasa or Khusus",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PresensiRow is one listing row annotated with the computed lateness for
// its day.
type PresensiRow struct {
	IDPresensi  int64   `json:"id_presensi"`
	IDPegawai   int64   `json:"id_pegawai"`
	NamaPegawai string  `json:"nama_pegawai"`
	NIPPegawai  string  `json:"nip_pegawai"`
	NamaOpd     *string `json:"nama_opd"`
	JamMasuk    int64   `json:"jam_masuk"`
	KetMasuk    string  `json:"ket_masuk"`
	Bukti       *string `json:"bukti,omitempty"`

	Lateness        string  `json:"lateness"`
	LatenessMinutes *int    `json:"lateness_minutes,omitempty"`
	IsWeekend       bool    `json:"isWeekend"`
	IsHoliday       bool    `json:"isHoliday"`
	IsRamadan       bool    `json:"isRamadan"`
	HolidayName     *string `json:"holidayName"`
}

// ListResult is the single-day listing plus its page-level lateness counts.
type ListResult struct {
	Date          string        `json:"date"`
	TotalRecords  int64         `json:"totalRecords"`
	TotalPages    int           `json:"totalPages"`
	Page          int           `json:"page"`
	Limit         int           `json:"limit"`
	TotalLateness int           `json:"totalLateness"`
	TotalOntime   int           `json:"totalOntime"`
	Data          []PresensiRow `json:"data"`
}
