package presensi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/sse"
)

var wib = time.FixedZone("WIB", 7*3600)

type stubPresensiRepo struct {
	rows      []presensi.Presensi
	checkedIn bool
	created   *presensi.Presensi
}

func (s *stubPresensiRepo) ListByWindow(_ context.Context, _, _ int64, _ presensi.ListFilter, _, _ int) ([]presensi.Presensi, int64, error) {
	return s.rows, int64(len(s.rows)), nil
}

func (s *stubPresensiRepo) FetchRange(_ context.Context, _, _ int64) ([]presensi.Presensi, error) {
	return s.rows, nil
}

func (s *stubPresensiRepo) HasCheckedIn(_ context.Context, _ int64, _, _ int64) (bool, error) {
	return s.checkedIn, nil
}

func (s *stubPresensiRepo) Create(_ context.Context, p presensi.Presensi) (presensi.Presensi, error) {
	p.IDPresensi = 42
	p.NamaPegawai = "Andi"
	p.NIPPegawai = "198001012005011001"
	s.created = &p
	return p, nil
}

type stubHariLiburRepo struct {
	rows []harilibur.HariLibur
}

func (s *stubHariLiburRepo) FetchOverlapping(_ context.Context, _, _ string) ([]harilibur.HariLibur, error) {
	return s.rows, nil
}

func (s *stubHariLiburRepo) Create(_ context.Context, h harilibur.HariLibur) (harilibur.HariLibur, error) {
	return h, nil
}

func (s *stubHariLiburRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func attendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		TimezoneOffsetHours: 7,
		HolidayTypeCode:     2,
		RamadanTypeCode:     1,
		ThresholdNormal:     "07:31:00",
		ThresholdRamadan:    "08:01:00",
	}
}

func epochWIB(value string) int64 {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, wib)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}

func TestList_AnnotatesLateness(t *testing.T) {
	t.Parallel()

	repo := &stubPresensiRepo{rows: []presensi.Presensi{
		{IDPresensi: 1, IDPegawai: 1, NamaPegawai: "Andi", JamMasuk: epochWIB("2024-03-04 07:00:00"), KetMasuk: "Biasa"},
		{IDPresensi: 2, IDPegawai: 2, NamaPegawai: "Budi", JamMasuk: epochWIB("2024-03-04 07:45:00"), KetMasuk: "Biasa"},
	}}
	svc := NewPresensiService(repo, &stubHariLiburRepo{}, sse.NewHub(), attendanceConfig())

	result, err := svc.List(context.Background(), presensi.ListRequest{Date: "2024-03-04"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.TotalRecords)
	assert.Equal(t, 1, result.TotalOntime)
	assert.Equal(t, 1, result.TotalLateness)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "Tepat Waktu", result.Data[0].Lateness)
	assert.Equal(t, "Terlambat 14 menit", result.Data[1].Lateness)
	require.NotNil(t, result.Data[1].LatenessMinutes)
	assert.Equal(t, 14, *result.Data[1].LatenessMinutes)
}

func TestList_RamadanThresholdApplies(t *testing.T) {
	t.Parallel()

	repo := &stubPresensiRepo{rows: []presensi.Presensi{
		{IDPresensi: 1, IDPegawai: 1, JamMasuk: epochWIB("2024-03-12 07:50:00"), KetMasuk: "Biasa"},
	}}
	hariLibur := &stubHariLiburRepo{rows: []harilibur.HariLibur{
		{HolidayName: "Ramadhan", Type: 1, DateStart: mustDay("2024-03-11"), DateEnd: dayPtr("2024-04-09")},
	}}
	svc := NewPresensiService(repo, hariLibur, sse.NewHub(), attendanceConfig())

	result, err := svc.List(context.Background(), presensi.ListRequest{Date: "2024-03-12"})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.True(t, result.Data[0].IsRamadan)
	// 07:50 is late on a normal day but inside the relaxed Ramadan cutoff.
	assert.Equal(t, "Tepat Waktu", result.Data[0].Lateness)
	assert.Equal(t, 1, result.TotalOntime)
}

func TestList_HolidayNeverScores(t *testing.T) {
	t.Parallel()

	repo := &stubPresensiRepo{rows: []presensi.Presensi{
		{IDPresensi: 1, IDPegawai: 1, JamMasuk: epochWIB("2024-03-11 10:00:00"), KetMasuk: "Biasa"},
	}}
	hariLibur := &stubHariLiburRepo{rows: []harilibur.HariLibur{
		{HolidayName: "Nyepi", Type: 2, DateStart: mustDay("2024-03-11")},
	}}
	svc := NewPresensiService(repo, hariLibur, sse.NewHub(), attendanceConfig())

	result, err := svc.List(context.Background(), presensi.ListRequest{Date: "2024-03-11"})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.True(t, result.Data[0].IsHoliday)
	require.NotNil(t, result.Data[0].HolidayName)
	assert.Equal(t, "Nyepi", *result.Data[0].HolidayName)
	assert.Equal(t, "-", result.Data[0].Lateness)
	assert.Equal(t, 0, result.TotalLateness)
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	rows := make([]presensi.Presensi, 0, 25)
	for i := 0; i < 25; i++ {
		rows = append(rows, presensi.Presensi{
			IDPresensi: int64(i + 1),
			IDPegawai:  int64(i + 1),
			JamMasuk:   epochWIB("2024-03-04 07:00:00") + int64(i)*1000,
			KetMasuk:   "Biasa",
		})
	}
	svc := NewPresensiService(&stubPresensiRepo{rows: rows}, &stubHariLiburRepo{}, sse.NewHub(), attendanceConfig())

	result, err := svc.List(context.Background(), presensi.ListRequest{Date: "2024-03-04", Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), result.TotalRecords)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Data, 5)
	assert.Equal(t, int64(21), result.Data[0].IDPresensi)
}

func TestList_InvalidDate(t *testing.T) {
	t.Parallel()
	svc := NewPresensiService(&stubPresensiRepo{}, &stubHariLiburRepo{}, sse.NewHub(), attendanceConfig())

	_, err := svc.List(context.Background(), presensi.ListRequest{Date: "04-03-2024"})
	assert.Error(t, err)
}

func TestCheckIn_PublishesToStream(t *testing.T) {
	t.Parallel()

	repo := &stubPresensiRepo{}
	hub := sse.NewHub()
	events, cleanup := hub.Subscribe(TopicPresensi)
	defer cleanup()

	svc := NewPresensiService(repo, &stubHariLiburRepo{}, hub, attendanceConfig())

	row, err := svc.CheckIn(context.Background(), presensi.CheckInRequest{IDPegawai: 1, KetMasuk: "Biasa"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), row.IDPresensi)
	require.NotNil(t, repo.created)

	select {
	case ev := <-events:
		assert.Equal(t, "check-in", ev.Event)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestCheckIn_DuplicateRejected(t *testing.T) {
	t.Parallel()

	repo := &stubPresensiRepo{checkedIn: true}
	svc := NewPresensiService(repo, &stubHariLiburRepo{}, sse.NewHub(), attendanceConfig())

	_, err := svc.CheckIn(context.Background(), presensi.CheckInRequest{IDPegawai: 1, KetMasuk: "Biasa"})
	assert.ErrorIs(t, err, presensi.ErrAlreadyCheckedIn)
}

func TestCheckIn_UnrecognizedCategoryRejected(t *testing.T) {
	t.Parallel()
	svc := NewPresensiService(&stubPresensiRepo{}, &stubHariLiburRepo{}, sse.NewHub(), attendanceConfig())

	_, err := svc.CheckIn(context.Background(), presensi.CheckInRequest{IDPegawai: 1, KetMasuk: "Tes"})
	assert.Error(t, err)
}

func mustDay(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(value string) *time.Time {
	t := mustDay(value)
	return &t
}
