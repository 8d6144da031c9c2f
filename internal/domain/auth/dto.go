package auth

import (
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	NIP      string `json:"nip_pegawai"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip_pegawai",
			Message: "nip_pegawai is required",
		})
	} else if !validator.IsValidNIP(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip_pegawai",
			Message: "nip_pegawai must be 18 digits",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"-"`
	RefreshExp   int64  `json:"-"`

	IDPegawai   int64  `json:"id_pegawai"`
	NIPPegawai  string `json:"nip_pegawai"`
	NamaPegawai string `json:"nama_pegawai"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
