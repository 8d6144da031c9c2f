package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
)

type stubPresensiService struct {
	listResult presensi.ListResult
	eselonRows []presensi.PresensiRow
	checkInRow presensi.PresensiRow
	err        error

	lastList   presensi.ListRequest
	lastEselon *int64
	lastCheck  presensi.CheckInRequest
}

func (s *stubPresensiService) List(_ context.Context, req presensi.ListRequest) (presensi.ListResult, error) {
	s.lastList = req
	if s.err != nil {
		return presensi.ListResult{}, s.err
	}
	return s.listResult, nil
}

func (s *stubPresensiService) ListEselon(_ context.Context, idOpd *int64) ([]presensi.PresensiRow, error) {
	s.lastEselon = idOpd
	if s.err != nil {
		return nil, s.err
	}
	return s.eselonRows, nil
}

func (s *stubPresensiService) CheckIn(_ context.Context, req presensi.CheckInRequest) (presensi.PresensiRow, error) {
	s.lastCheck = req
	if s.err != nil {
		return presensi.PresensiRow{}, s.err
	}
	return s.checkInRow, nil
}

func TestPresensiListHandler(t *testing.T) {
	svc := &stubPresensiService{
		listResult: presensi.ListResult{Date: "2024-03-04", TotalRecords: 1},
	}
	handler := NewPresensiHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/presensi?date=2024-03-04&page=2&limit=25&search=andi", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-03-04", svc.lastList.Date)
	assert.Equal(t, 2, svc.lastList.Page)
	assert.Equal(t, 25, svc.lastList.Limit)
	assert.Equal(t, "andi", svc.lastList.Search)
}

func TestPresensiListHandlerDefaultsPagination(t *testing.T) {
	svc := &stubPresensiService{}
	handler := NewPresensiHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/presensi", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.lastList.Page)
	assert.Equal(t, 10, svc.lastList.Limit)
}

func TestEselonHandlerPassesOpdFilter(t *testing.T) {
	svc := &stubPresensiService{}
	handler := NewPresensiHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/eselon?id_opd=5", nil)
	rec := httptest.NewRecorder()
	handler.ListEselon(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastEselon)
	assert.Equal(t, int64(5), *svc.lastEselon)
}

func TestCheckInHandler(t *testing.T) {
	svc := &stubPresensiService{
		checkInRow: presensi.PresensiRow{IDPresensi: 42, IDPegawai: 1, NamaPegawai: "Andi"},
	}
	handler := NewPresensiHandler(svc)

	body := strings.NewReader(`{"id_pegawai": 1, "ket_masuk": "Biasa - Apel Pagi"}`)
	req := httptest.NewRequest(http.MethodPost, "/presensi", body)
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), svc.lastCheck.IDPegawai)
	assert.Equal(t, "Biasa - Apel Pagi", svc.lastCheck.KetMasuk)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Presensi recorded", envelope.Message)
}

func TestCheckInHandlerBadJSON(t *testing.T) {
	svc := &stubPresensiService{}
	handler := NewPresensiHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/presensi", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestCheckInHandlerDuplicate(t *testing.T) {
	svc := &stubPresensiService{err: presensi.ErrAlreadyCheckedIn}
	handler := NewPresensiHandler(svc)

	body := strings.NewReader(`{"id_pegawai": 1, "ket_masuk": "Biasa - Apel Pagi"}`)
	req := httptest.NewRequest(http.MethodPost, "/presensi", body)
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}
