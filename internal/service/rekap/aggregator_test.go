package rekap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
)

func strPtr(s string) *string { return &s }

func TestAggregate_BucketsAreMutuallyExclusive(t *testing.T) {
	t.Parallel()
	e := testEngine()

	employees := []pegawai.Pegawai{
		{IDPegawai: 1, NamaPegawai: "Andi", NIPPegawai: "198001012005011001", NamaOpd: strPtr("Dinas Pendidikan")},
		{IDPegawai: 2, NamaPegawai: "Budi", NIPPegawai: "198001012005011002", NamaOpd: strPtr("Dinas Pendidikan")},
	}
	workingDays := []string{"2024-03-04", "2024-03-05", "2024-03-06"}

	presensiIdx := e.PresensiIndex([]presensi.Presensi{
		{IDPegawai: 1, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
		{IDPegawai: 1, JamMasuk: epochWIB("2024-03-05 07:00:00.000"), KetMasuk: "Khusus"},
		{IDPegawai: 2, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
	})
	izinIdx := e.IzinIndex([]izin.Izin{
		{IDPegawai: 2, TanggalIzin: "5/3/2024", TanggalSelesai: "5/3/2024"},
	})

	groups := e.Aggregate(employees, workingDays, presensiIdx, izinIdx)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "Dinas Pendidikan", group.NamaOpd)
	assert.Equal(t, 2, group.TotalPegawai)
	assert.Equal(t, 2, group.Totals.Biasa)
	assert.Equal(t, 1, group.Totals.Khusus)
	assert.Equal(t, 1, group.Totals.Izin)
	assert.Equal(t, 2, group.Totals.TanpaKeterangan)

	// The four buckets always account for every employee-day.
	assert.Equal(t, len(employees)*len(workingDays), group.Totals.Total())
}

func TestAggregate_FullRangeLeave(t *testing.T) {
	t.Parallel()
	e := testEngine()

	employees := []pegawai.Pegawai{
		{IDPegawai: 1, NamaPegawai: "Citra", NIPPegawai: "198001012005012001", NamaOpd: strPtr("Inspektorat")},
	}
	workingDays := []string{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08"}

	izinIdx := e.IzinIndex([]izin.Izin{
		{IDPegawai: 1, TanggalIzin: "4/3/2024", TanggalSelesai: "8/3/2024"},
	})

	groups := e.Aggregate(employees, workingDays, nil, izinIdx)
	require.Len(t, groups, 1)
	assert.Equal(t, 5, groups[0].Totals.Izin)
	assert.Equal(t, 0, groups[0].Totals.TanpaKeterangan)
	assert.Equal(t, 100.0, Percent(groups[0].Totals.Izin, len(workingDays)))
}

func TestAggregate_MissingOpdGroupsAsUnknown(t *testing.T) {
	t.Parallel()
	e := testEngine()

	employees := []pegawai.Pegawai{
		{IDPegawai: 1, NamaPegawai: "Dewi", NIPPegawai: "198001012005012002"},
		{IDPegawai: 2, NamaPegawai: "Eka", NIPPegawai: "198001012005012003", NamaOpd: strPtr("")},
		{IDPegawai: 3, NamaPegawai: "Fajar", NIPPegawai: "198001012005011003", NamaOpd: strPtr("Bappeda")},
	}

	groups := e.Aggregate(employees, []string{"2024-03-04"}, nil, nil)
	require.Len(t, groups, 2)
	assert.Equal(t, "Bappeda", groups[0].NamaOpd)
	assert.Equal(t, UnknownOpdName, groups[1].NamaOpd)
	assert.Equal(t, 2, groups[1].TotalPegawai)
}

func TestAggregate_RowsOutsideEmployeeSetIgnored(t *testing.T) {
	t.Parallel()
	e := testEngine()

	employees := []pegawai.Pegawai{
		{IDPegawai: 1, NamaPegawai: "Gita", NIPPegawai: "198001012005012004", NamaOpd: strPtr("Bappeda")},
	}
	presensiIdx := e.PresensiIndex([]presensi.Presensi{
		{IDPegawai: 99, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
	})

	groups := e.Aggregate(employees, []string{"2024-03-04"}, presensiIdx, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].Totals.Biasa)
	assert.Equal(t, 1, groups[0].Totals.TanpaKeterangan)
}

func TestAggregate_PerDateAndPerPegawaiOrdering(t *testing.T) {
	t.Parallel()
	e := testEngine()

	employees := []pegawai.Pegawai{
		{IDPegawai: 2, NamaPegawai: "Zainal", NIPPegawai: "198001012005011004", NamaOpd: strPtr("Bappeda")},
		{IDPegawai: 1, NamaPegawai: "Agus", NIPPegawai: "198001012005011005", NamaOpd: strPtr("Bappeda")},
	}
	workingDays := []string{"2024-03-04", "2024-03-05"}

	groups := e.Aggregate(employees, workingDays, nil, nil)
	require.Len(t, groups, 1)

	require.Len(t, groups[0].PerDate, 2)
	assert.Equal(t, "2024-03-04", groups[0].PerDate[0].Tanggal)
	assert.Equal(t, "2024-03-05", groups[0].PerDate[1].Tanggal)

	require.Len(t, groups[0].PerPegawai, 2)
	assert.Equal(t, "Agus", groups[0].PerPegawai[0].NamaPegawai)
	assert.Equal(t, "Zainal", groups[0].PerPegawai[1].NamaPegawai)
}

func TestAggregate_Deterministic(t *testing.T) {
	t.Parallel()
	e := testEngine()

	employees := []pegawai.Pegawai{
		{IDPegawai: 1, NamaPegawai: "Andi", NIPPegawai: "198001012005011001", NamaOpd: strPtr("Dinas Pendidikan")},
		{IDPegawai: 2, NamaPegawai: "Budi", NIPPegawai: "198001012005011002", NamaOpd: strPtr("Bappeda")},
	}
	workingDays := []string{"2024-03-04", "2024-03-05"}
	presensiIdx := e.PresensiIndex([]presensi.Presensi{
		{IDPegawai: 1, JamMasuk: epochWIB("2024-03-04 07:00:00.000"), KetMasuk: "Biasa"},
	})

	first := e.Aggregate(employees, workingDays, presensiIdx, nil)
	second := e.Aggregate(employees, workingDays, presensiIdx, nil)
	assert.Equal(t, first, second)
}

func TestPercent_Rounding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(3, 3))
	assert.Equal(t, 0.0, Percent(0, 3))
}

func TestPercent_ZeroDenominator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Percent(0, 0))
	assert.Equal(t, 0.0, Percent(5, 0))
}
