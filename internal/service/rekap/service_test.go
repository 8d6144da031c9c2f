package rekap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/rekap"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

type stubRekapRepo struct {
	hariLibur []harilibur.HariLibur
	presensi  []presensi.Presensi
	izin      []izin.Izin
	pegawai   []pegawai.Pegawai

	hariLiburErr error
	lastFilter   pegawai.Filter
}

func (s *stubRekapRepo) FetchHariLibur(_ context.Context, _, _ string) ([]harilibur.HariLibur, error) {
	return s.hariLibur, s.hariLiburErr
}

func (s *stubRekapRepo) FetchPresensi(_ context.Context, _, _ int64) ([]presensi.Presensi, error) {
	return s.presensi, nil
}

func (s *stubRekapRepo) FetchVerifiedIzin(_ context.Context) ([]izin.Izin, error) {
	return s.izin, nil
}

func (s *stubRekapRepo) FetchPegawai(_ context.Context, filter pegawai.Filter) ([]pegawai.Pegawai, error) {
	s.lastFilter = filter
	return s.pegawai, nil
}

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		TimezoneOffsetHours: 7,
		HolidayTypeCode:     2,
		RamadanTypeCode:     1,
		ThresholdNormal:     "07:31:00",
		ThresholdRamadan:    "08:01:00",
	}
}

func TestRekapPersentase_EndToEnd(t *testing.T) {
	t.Parallel()

	// Week of 2024-03-04, with Wednesday removed by a holiday: four
	// working days remain.
	repo := &stubRekapRepo{
		hariLibur: []harilibur.HariLibur{
			{HolidayName: "Hari Raya Nyepi", Type: 2, DateStart: day("2024-03-06")},
		},
		pegawai: []pegawai.Pegawai{
			{IDPegawai: 1, NamaPegawai: "Andi", NIPPegawai: "198001012005011001", NamaOpd: strPtr("Dinas Pendidikan")},
			{IDPegawai: 2, NamaPegawai: "Budi", NIPPegawai: "198001012005011002", NamaOpd: strPtr("Dinas Pendidikan")},
		},
		presensi: []presensi.Presensi{
			{IDPegawai: 1, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
			{IDPegawai: 1, JamMasuk: epochWIB("2024-03-05 07:00:00.000"), KetMasuk: "Biasa"},
			{IDPegawai: 1, JamMasuk: epochWIB("2024-03-07 07:00:00.000"), KetMasuk: "Khusus"},
			{IDPegawai: 1, JamMasuk: epochWIB("2024-03-08 07:00:00.000"), KetMasuk: "Biasa"},
			{IDPegawai: 2, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
		},
		izin: []izin.Izin{
			{IDPegawai: 2, TanggalIzin: "5/3/2024", TanggalSelesai: "7/3/2024", Verifikasi: true},
		},
	}
	svc := NewRekapService(repo, testAttendanceConfig())

	rows, err := svc.RekapPersentase(context.Background(), rekap.RangeRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-08",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Dinas Pendidikan", row.NamaOpd)
	assert.Equal(t, 2, row.TotalPegawai)
	assert.Equal(t, 4, row.HariKerja)
	assert.Equal(t, 8, row.TotalTarget)
	assert.Equal(t, 4, row.Biasa)
	assert.Equal(t, 1, row.Khusus)
	// The leave spans 03-05 through 03-07 but 03-06 is a holiday, so it
	// only covers two working days.
	assert.Equal(t, 2, row.Izin)
	assert.Equal(t, 1, row.TanpaKeterangan)

	assert.Equal(t, 62.5, row.PersenHadir)
	assert.Equal(t, 50.0, row.PersenBiasa)
	assert.Equal(t, 12.5, row.PersenKhusus)
	assert.Equal(t, 25.0, row.PersenIzin)
	assert.Equal(t, 12.5, row.PersenTanpaKeterangan)
}

func TestRekapPersentase_ValidationError(t *testing.T) {
	t.Parallel()
	svc := NewRekapService(&stubRekapRepo{}, testAttendanceConfig())

	_, err := svc.RekapPersentase(context.Background(), rekap.RangeRequest{
		StartDate: "2024-03-08",
		EndDate:   "2024-03-04",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestRekapPersentase_UpstreamError(t *testing.T) {
	t.Parallel()
	repo := &stubRekapRepo{hariLiburErr: errors.New("connection refused")}
	svc := NewRekapService(repo, testAttendanceConfig())

	_, err := svc.RekapPersentase(context.Background(), rekap.RangeRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-08",
	})
	assert.ErrorIs(t, err, rekap.ErrUpstreamFetch)
}

func TestRekapPersentase_NoEmployees(t *testing.T) {
	t.Parallel()
	svc := NewRekapService(&stubRekapRepo{}, testAttendanceConfig())

	rows, err := svc.RekapPersentase(context.Background(), rekap.RangeRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-08",
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRekapTabel_FiltersPassedThrough(t *testing.T) {
	t.Parallel()
	repo := &stubRekapRepo{}
	svc := NewRekapService(repo, testAttendanceConfig())

	idOpd := int64(7)
	_, err := svc.RekapTabel(context.Background(), rekap.TabelRequest{
		RangeRequest: rekap.RangeRequest{StartDate: "2024-03-04", EndDate: "2024-03-08"},
		IDOpd:        &idOpd,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.IDOpd)
	assert.Equal(t, int64(7), *repo.lastFilter.IDOpd)
}

func TestRekapTabel_EndToEnd(t *testing.T) {
	t.Parallel()
	repo := &stubRekapRepo{
		hariLibur: []harilibur.HariLibur{
			{HolidayName: "Hari Raya Nyepi", Type: 2, DateStart: day("2024-03-06")},
		},
		pegawai: []pegawai.Pegawai{
			{IDPegawai: 1, NamaPegawai: "Andi", NIPPegawai: "198001012005011001", NamaOpd: strPtr("Dinas Pendidikan")},
		},
		presensi: []presensi.Presensi{
			{IDPegawai: 1, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
		},
	}
	svc := NewRekapService(repo, testAttendanceConfig())

	result, err := svc.RekapTabel(context.Background(), rekap.TabelRequest{
		RangeRequest: rekap.RangeRequest{StartDate: "2024-03-04", EndDate: "2024-03-08"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-04", "2024-03-05", "2024-03-07", "2024-03-08"}, result.HariKerja)
	assert.Equal(t, []string{"2024-03-06"}, result.HariLibur)

	require.Len(t, result.Data, 1)
	opd := result.Data[0]
	assert.Equal(t, 1, opd.JumlahPegawai)
	require.Len(t, opd.PerTanggal, 4)
	assert.Equal(t, 1, opd.PerTanggal[0].Biasa)
	assert.Equal(t, 1, opd.PerTanggal[1].TanpaKeterangan)

	require.Len(t, opd.Summary, 1)
	assert.Equal(t, 1, opd.Summary[0].Biasa)
	assert.Equal(t, 3, opd.Summary[0].TanpaKeterangan)
	assert.Equal(t, 25.0, opd.Summary[0].Persentase.Biasa)
	assert.Equal(t, 75.0, opd.Summary[0].Persentase.TanpaKeterangan)
}
