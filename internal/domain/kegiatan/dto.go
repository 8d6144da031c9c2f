package kegiatan

import (
	"io"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

// MonthRequest selects one calendar month of activity reports, scoped to an
// employee or an OPD.
type MonthRequest struct {
	Bulan      int
	Tahun      int
	IDPegawai  *int64
	IDOpd      *int64
	Verifikasi *bool
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bulan < 1 || r.Bulan > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "bulan",
			Message: "bulan must be between 1 and 12",
		})
	}
	if r.Tahun < 2000 || r.Tahun > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "tahun",
			Message: "tahun must be a four-digit year",
		})
	}
	if r.IDPegawai == nil && r.IDOpd == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "id_pegawai",
			Message: "id_pegawai or id_opd is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateKegiatanRequest struct {
	IDPegawai  int64   `json:"id_pegawai"`
	IDPresensi *int64  `json:"id_presensi"`
	Kegiatan   string  `json:"kegiatan"`
	Catatan    *string `json:"catatan"`
	// ISO date on the wire; the service converts to the legacy storage
	// format.
	TanggalKegiatan string `json:"tanggal_kegiatan"`

	// Optional proof photo (multipart upload).
	File     io.Reader `json:"-"`
	Filename string    `json:"-"`
}

func (r *CreateKegiatanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IDPegawai <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id_pegawai",
			Message: "id_pegawai is required",
		})
	}
	if validator.IsEmpty(r.Kegiatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan is required",
		})
	}
	if validator.IsEmpty(r.TanggalKegiatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_kegiatan",
			Message: "tanggal_kegiatan is required",
		})
	} else if _, ok := validator.IsValidDate(r.TanggalKegiatan); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_kegiatan",
			Message: "tanggal_kegiatan must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateKegiatanRequest is a partial update; nil fields keep their stored
// value.
type UpdateKegiatanRequest struct {
	IDPresensi      *int64  `json:"id_presensi"`
	Kegiatan        *string `json:"kegiatan"`
	TanggalKegiatan *string `json:"tanggal_kegiatan"`
	Catatan         *string `json:"catatan"`
	Verifikasi      *bool   `json:"verifikasi"`
	EditedBy        *string `json:"edited_by"`

	File     io.Reader `json:"-"`
	Filename string    `json:"-"`
}

func (r *UpdateKegiatanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Kegiatan != nil && validator.IsEmpty(*r.Kegiatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan must not be empty",
		})
	}
	if r.TanggalKegiatan != nil {
		if _, ok := validator.IsValidDate(*r.TanggalKegiatan); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "tanggal_kegiatan",
				Message: "tanggal_kegiatan must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type KegiatanResponse struct {
	IDKegiatan      int64      `json:"id_kegiatan"`
	IDPegawai       int64      `json:"id_pegawai"`
	NamaPegawai     string     `json:"nama_pegawai"`
	NIPPegawai      string     `json:"nip_pegawai"`
	NamaOpd         *string    `json:"nama_opd"`
	IDPresensi      *int64     `json:"id_presensi"`
	JamMasuk        *int64     `json:"jam_masuk"`
	Kegiatan        string     `json:"kegiatan"`
	TanggalKegiatan string     `json:"tanggal_kegiatan"`
	Catatan         *string    `json:"catatan,omitempty"`
	Verifikasi      bool       `json:"verifikasi"`
	URLFile         *string    `json:"url_file,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
