package rekap

import (
	"context"
	"fmt"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/rekap"
)

type Service struct {
	repo        rekap.RekapRepository
	engine      *Engine
	holidayCode int
	ramadanCode int
}

func NewRekapService(repo rekap.RekapRepository, cfg config.AttendanceConfig) *Service {
	return &Service{
		repo: repo,
		engine: NewEngine(cfg.Location(), Thresholds{
			Normal:  cfg.ThresholdNormal,
			Ramadan: cfg.ThresholdRamadan,
		}),
		holidayCode: cfg.HolidayTypeCode,
		ramadanCode: cfg.RamadanTypeCode,
	}
}

// snapshot is the fully-fetched, pre-indexed input for one report run.
type snapshot struct {
	workingDays []string
	holidayDays []string
	presensiIdx map[string]presensi.Presensi
	izinIdx     map[string]bool
	employees   []pegawai.Pegawai
}

func (s *Service) fetchSnapshot(ctx context.Context, req rekap.RangeRequest, filter pegawai.Filter) (snapshot, error) {
	start, end := req.Start(), req.End()

	hariLibur, err := s.repo.FetchHariLibur(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: hari libur: %v", rekap.ErrUpstreamFetch, err)
	}
	periods := PeriodsFromHariLibur(hariLibur, s.holidayCode, s.ramadanCode)

	startEpoch, endEpoch := s.epochWindow(start, end)
	presensiRows, err := s.repo.FetchPresensi(ctx, startEpoch, endEpoch)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: presensi: %v", rekap.ErrUpstreamFetch, err)
	}

	izinRows, err := s.repo.FetchVerifiedIzin(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: izin: %v", rekap.ErrUpstreamFetch, err)
	}

	employees, err := s.repo.FetchPegawai(ctx, filter)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: pegawai: %v", rekap.ErrUpstreamFetch, err)
	}

	return snapshot{
		workingDays: s.engine.WorkingDays(start, end, periods),
		holidayDays: s.engine.HolidayDates(start, end, periods),
		presensiIdx: s.engine.PresensiIndex(presensiRows),
		izinIdx:     s.engine.IzinIndex(izinRows),
		employees:   employees,
	}, nil
}

// epochWindow spans midnight of the first day through the last millisecond
// of the last day in the civil zone.
func (s *Service) epochWindow(start, end time.Time) (int64, int64) {
	loc := s.engine.loc
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return from.UnixMilli(), to.UnixMilli()
}

func (s *Service) RekapPersentase(ctx context.Context, req rekap.RangeRequest) ([]rekap.RekapPersentaseRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.fetchSnapshot(ctx, req, pegawai.Filter{})
	if err != nil {
		return nil, err
	}

	groups := s.engine.Aggregate(snap.employees, snap.workingDays, snap.presensiIdx, snap.izinIdx)
	hariKerja := len(snap.workingDays)

	rows := make([]rekap.RekapPersentaseRow, 0, len(groups))
	for _, group := range groups {
		target := group.TotalPegawai * hariKerja
		rows = append(rows, rekap.RekapPersentaseRow{
			NamaOpd:         group.NamaOpd,
			TotalPegawai:    group.TotalPegawai,
			HariKerja:       hariKerja,
			TotalTarget:     target,
			Biasa:           group.Totals.Biasa,
			Khusus:          group.Totals.Khusus,
			Izin:            group.Totals.Izin,
			TanpaKeterangan: group.Totals.TanpaKeterangan,

			PersenHadir:           Percent(group.Totals.Hadir(), target),
			PersenBiasa:           Percent(group.Totals.Biasa, target),
			PersenKhusus:          Percent(group.Totals.Khusus, target),
			PersenIzin:            Percent(group.Totals.Izin, target),
			PersenTanpaKeterangan: Percent(group.Totals.TanpaKeterangan, target),
		})
	}
	return rows, nil
}

func (s *Service) RekapTabel(ctx context.Context, req rekap.TabelRequest) (rekap.RekapTabelResult, error) {
	if err := req.Validate(); err != nil {
		return rekap.RekapTabelResult{}, err
	}

	filter := pegawai.Filter{
		IDOpd:     req.IDOpd,
		IDJabatan: req.IDJabatan,
		IDPangkat: req.IDPangkat,
	}
	snap, err := s.fetchSnapshot(ctx, req.RangeRequest, filter)
	if err != nil {
		return rekap.RekapTabelResult{}, err
	}

	groups := s.engine.Aggregate(snap.employees, snap.workingDays, snap.presensiIdx, snap.izinIdx)
	hariKerja := len(snap.workingDays)

	result := rekap.RekapTabelResult{
		HariKerja: snap.workingDays,
		HariLibur: snap.holidayDays,
		Data:      make([]rekap.RekapTabelOpd, 0, len(groups)),
	}
	for _, group := range groups {
		opd := rekap.RekapTabelOpd{
			NamaOpd:       group.NamaOpd,
			JumlahPegawai: group.TotalPegawai,
			PerTanggal:    make([]rekap.TanggalCounts, 0, len(group.PerDate)),
			Summary:       make([]rekap.PegawaiSummary, 0, len(group.PerPegawai)),
		}
		for _, date := range group.PerDate {
			opd.PerTanggal = append(opd.PerTanggal, rekap.TanggalCounts{
				Tanggal:         date.Tanggal,
				Biasa:           date.Counts.Biasa,
				Khusus:          date.Counts.Khusus,
				Izin:            date.Counts.Izin,
				TanpaKeterangan: date.Counts.TanpaKeterangan,
			})
		}
		for _, emp := range group.PerPegawai {
			opd.Summary = append(opd.Summary, rekap.PegawaiSummary{
				IDPegawai:       emp.IDPegawai,
				NamaPegawai:     emp.NamaPegawai,
				NIPPegawai:      emp.NIPPegawai,
				Biasa:           emp.Counts.Biasa,
				Khusus:          emp.Counts.Khusus,
				Izin:            emp.Counts.Izin,
				TanpaKeterangan: emp.Counts.TanpaKeterangan,
				Persentase: rekap.ClassPercent{
					Biasa:           Percent(emp.Counts.Biasa, hariKerja),
					Khusus:          Percent(emp.Counts.Khusus, hariKerja),
					Izin:            Percent(emp.Counts.Izin, hariKerja),
					TanpaKeterangan: Percent(emp.Counts.TanpaKeterangan, hariKerja),
				},
			})
		}
		result.Data = append(result.Data, opd)
	}
	return result, nil
}
