package izin

import (
	"io"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

type CreateIzinRequest struct {
	IDPegawai  int64   `json:"id_pegawai"`
	JenisIzin  string  `json:"jenis_izin"`
	Keterangan *string `json:"keterangan"`
	// ISO dates on the wire; the service converts to the legacy storage
	// format.
	TanggalIzin    string `json:"tanggal_izin"`
	TanggalSelesai string `json:"tanggal_selesai"`

	// Optional proof photo (multipart upload).
	File     io.Reader `json:"-"`
	Filename string    `json:"-"`
}

func (r *CreateIzinRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IDPegawai <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id_pegawai",
			Message: "id_pegawai is required",
		})
	}
	if validator.IsEmpty(r.JenisIzin) {
		errs = append(errs, validator.ValidationError{
			Field:   "jenis_izin",
			Message: "jenis_izin is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool
	if validator.IsEmpty(r.TanggalIzin) {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_izin",
			Message: "tanggal_izin is required",
		})
	} else if start, startOK = validator.IsValidDate(r.TanggalIzin); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_izin",
			Message: "tanggal_izin must be in YYYY-MM-DD format",
		})
	}
	if r.TanggalSelesai != "" {
		if end, endOK = validator.IsValidDate(r.TanggalSelesai); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "tanggal_selesai",
				Message: "tanggal_selesai must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_selesai",
			Message: "tanggal_selesai must not be before tanggal_izin",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRequest struct {
	IDOpd     *int64
	IDPegawai *int64
	Page      int
	Limit     int
}

type IzinResponse struct {
	IDIzin         int64   `json:"id_izin"`
	IDPegawai      int64   `json:"id_pegawai"`
	NamaPegawai    string  `json:"nama_pegawai"`
	NamaOpd        *string `json:"nama_opd"`
	JenisIzin      string  `json:"jenis_izin"`
	Keterangan     *string `json:"keterangan,omitempty"`
	TanggalIzin    string  `json:"tanggal_izin"`
	TanggalSelesai string  `json:"tanggal_selesai"`
	Verifikasi     bool    `json:"verifikasi"`
	Bukti          *string `json:"bukti,omitempty"`
}

type ListIzinResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Data       []IzinResponse `json:"data"`
}
