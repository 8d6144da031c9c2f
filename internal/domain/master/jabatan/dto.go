package jabatan

import (
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

type CreateJabatanRequest struct {
	IDOpd       int64   `json:"id_opd"`
	NamaJabatan string  `json:"nama_jabatan"`
	Tupoksi     *string `json:"tupoksi"`
	Eselon      *int    `json:"eselon"`
}

func (r *CreateJabatanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IDOpd <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id_opd",
			Message: "id_opd is required",
		})
	}
	if validator.IsEmpty(r.NamaJabatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama_jabatan",
			Message: "nama_jabatan is required",
		})
	}
	if r.Eselon != nil && (*r.Eselon < 1 || *r.Eselon > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "eselon",
			Message: "eselon must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJabatanRequest struct {
	IDJabatan   int64   `json:"-"`
	IDOpd       *int64  `json:"id_opd"`
	NamaJabatan *string `json:"nama_jabatan"`
	Tupoksi     *string `json:"tupoksi"`
	Eselon      *int    `json:"eselon"`
	EditedBy    *string `json:"edited_by"`
}

func (r *UpdateJabatanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NamaJabatan != nil && validator.IsEmpty(*r.NamaJabatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama_jabatan",
			Message: "nama_jabatan must not be empty",
		})
	}
	if r.Eselon != nil && (*r.Eselon < 1 || *r.Eselon > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "eselon",
			Message: "eselon must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the position list. EselonOnly restricts to the
// leadership tiers (2 and 3) the dashboard shows.
type ListFilter struct {
	IDOpd      *int64
	EselonOnly bool
}

type JabatanResponse struct {
	IDJabatan   int64   `json:"id_jabatan"`
	IDOpd       int64   `json:"id_opd"`
	NamaJabatan string  `json:"nama_jabatan"`
	Tupoksi     *string `json:"tupoksi,omitempty"`
	Eselon      *int    `json:"eselon,omitempty"`
	NamaOpd     *string `json:"nama_opd,omitempty"`
}
