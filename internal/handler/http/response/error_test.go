package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/auth"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/kegiatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/jabatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/rekap"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"token expired", auth.ErrTokenExpired, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"token revoked", auth.ErrTokenRevoked, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"already checked in", presensi.ErrAlreadyCheckedIn, http.StatusConflict, "CONFLICT"},
		{"izin not found", izin.ErrIzinNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"izin already verified", izin.ErrIzinAlreadyVerified, http.StatusConflict, "CONFLICT"},
		{"kegiatan not found", kegiatan.ErrKegiatanNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"pegawai not found", pegawai.ErrPegawaiNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"jabatan not found", jabatan.ErrJabatanNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"upstream fetch", rekap.ErrUpstreamFetch, http.StatusBadGateway, "UPSTREAM_FETCH_ERROR"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)

			var envelope Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, c.wantCode, envelope.Error.Code)
		})
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("fetch hari_libur"), rekap.ErrUpstreamFetch))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "start_date is required", envelope.Error.Details["start_date"])
}
