package response

import (
	"errors"
	"net/http"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/auth"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/kegiatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/jabatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/rekap"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid NIP or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired or invalid")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// Attendance domain errors
	case errors.Is(err, presensi.ErrAlreadyCheckedIn):
		Conflict(w, "Pegawai has already checked in today")

	// Leave domain errors
	case errors.Is(err, izin.ErrIzinNotFound):
		NotFound(w, "Izin record not found")
	case errors.Is(err, izin.ErrIzinAlreadyVerified):
		Conflict(w, "Izin has already been verified")

	// Activity-report errors
	case errors.Is(err, kegiatan.ErrKegiatanNotFound):
		NotFound(w, "Kegiatan record not found")

	// Master data errors
	case errors.Is(err, pegawai.ErrPegawaiNotFound):
		NotFound(w, "Pegawai not found")
	case errors.Is(err, jabatan.ErrJabatanNotFound):
		NotFound(w, "Jabatan not found")
	case errors.Is(err, harilibur.ErrHariLiburNotFound):
		NotFound(w, "Hari libur not found")

	// Report errors
	case errors.Is(err, rekap.ErrUpstreamFetch):
		BadGateway(w, "Failed to fetch reference data")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
