package presensi

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/sse"
	"github.com/pemda-presensi/presensi-backend-go/internal/service/rekap"
)

// TopicPresensi is the SSE topic new check-ins are published to.
const TopicPresensi = "presensi"

const defaultLimit = 10

type PresensiServiceImpl struct {
	presensi.PresensiRepository
	harilibur.HariLiburRepository
	hub         *sse.Hub
	engine      *rekap.Engine
	loc         *time.Location
	holidayCode int
	ramadanCode int
}

func NewPresensiService(repo presensi.PresensiRepository, hariLiburRepo harilibur.HariLiburRepository, hub *sse.Hub, cfg config.AttendanceConfig) presensi.PresensiService {
	return &PresensiServiceImpl{
		PresensiRepository:  repo,
		HariLiburRepository: hariLiburRepo,
		hub:                 hub,
		engine: rekap.NewEngine(cfg.Location(), rekap.Thresholds{
			Normal:  cfg.ThresholdNormal,
			Ramadan: cfg.ThresholdRamadan,
		}),
		loc:         cfg.Location(),
		holidayCode: cfg.HolidayTypeCode,
		ramadanCode: cfg.RamadanTypeCode,
	}
}

// List implements presensi.PresensiService. The whole day is fetched so the
// late/on-time totals cover every row, then the requested page is sliced
// out.
func (s *PresensiServiceImpl) List(ctx context.Context, req presensi.ListRequest) (presensi.ListResult, error) {
	if err := req.Validate(); err != nil {
		return presensi.ListResult{}, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().In(s.loc).Format("2006-01-02")
	}
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return presensi.ListResult{}, fmt.Errorf("parse date: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	threshold, err := s.thresholdFor(ctx, day, date)
	if err != nil {
		return presensi.ListResult{}, err
	}

	startEpoch, endEpoch := dayWindow(day)
	filter := presensi.ListFilter{
		IDOpd:     req.IDOpd,
		IDPegawai: req.IDPegawai,
		Search:    req.Search,
	}
	rows, total, err := s.ListByWindow(ctx, startEpoch, endEpoch, filter, 0, 0)
	if err != nil {
		return presensi.ListResult{}, fmt.Errorf("list presensi: %w", err)
	}

	result := presensi.ListResult{
		Date:         date,
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
	}

	annotated := make([]presensi.PresensiRow, 0, len(rows))
	for _, row := range rows {
		out := s.annotate(row, date, threshold)
		if out.LatenessMinutes != nil {
			result.TotalLateness++
		} else {
			result.TotalOntime++
		}
		annotated = append(annotated, out)
	}

	offset := (page - 1) * limit
	if offset < len(annotated) {
		endIdx := offset + limit
		if endIdx > len(annotated) {
			endIdx = len(annotated)
		}
		result.Data = annotated[offset:endIdx]
	} else {
		result.Data = []presensi.PresensiRow{}
	}
	result.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	return result, nil
}

// ListEselon implements presensi.PresensiService.
func (s *PresensiServiceImpl) ListEselon(ctx context.Context, idOpd *int64) ([]presensi.PresensiRow, error) {
	now := time.Now().In(s.loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	date := day.Format("2006-01-02")

	threshold, err := s.thresholdFor(ctx, day, date)
	if err != nil {
		return nil, err
	}

	startEpoch, endEpoch := dayWindow(day)
	rows, _, err := s.ListByWindow(ctx, startEpoch, endEpoch, presensi.ListFilter{
		IDOpd:      idOpd,
		EselonOnly: true,
	}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list eselon presensi: %w", err)
	}

	out := make([]presensi.PresensiRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.annotate(row, date, threshold))
	}
	return out, nil
}

// CheckIn implements presensi.PresensiService. The new row is pushed to the
// live stream after the insert commits.
func (s *PresensiServiceImpl) CheckIn(ctx context.Context, req presensi.CheckInRequest) (presensi.PresensiRow, error) {
	if err := req.Validate(); err != nil {
		return presensi.PresensiRow{}, err
	}

	now := time.Now().In(s.loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	date := day.Format("2006-01-02")
	startEpoch, endEpoch := dayWindow(day)

	exists, err := s.HasCheckedIn(ctx, req.IDPegawai, startEpoch, endEpoch)
	if err != nil {
		return presensi.PresensiRow{}, fmt.Errorf("check existing presensi: %w", err)
	}
	if exists {
		return presensi.PresensiRow{}, presensi.ErrAlreadyCheckedIn
	}

	created, err := s.PresensiRepository.Create(ctx, presensi.Presensi{
		IDPegawai: req.IDPegawai,
		JamMasuk:  now.UnixMilli(),
		KetMasuk:  req.KetMasuk,
	})
	if err != nil {
		return presensi.PresensiRow{}, fmt.Errorf("create presensi: %w", err)
	}

	threshold, err := s.thresholdFor(ctx, day, date)
	if err != nil {
		return presensi.PresensiRow{}, err
	}
	row := s.annotate(created, date, threshold)

	s.hub.Publish(TopicPresensi, sse.Event{
		Topic: TopicPresensi,
		Event: "check-in",
		Data:  row,
	})
	return row, nil
}

func (s *PresensiServiceImpl) thresholdFor(ctx context.Context, day time.Time, date string) (rekap.DailyThreshold, error) {
	hariLibur, err := s.FetchOverlapping(ctx, date, date)
	if err != nil {
		return rekap.DailyThreshold{}, fmt.Errorf("fetch hari libur: %w", err)
	}
	periods := rekap.PeriodsFromHariLibur(hariLibur, s.holidayCode, s.ramadanCode)
	return s.engine.ThresholdFor(day, periods), nil
}

const (
	latenessOntime   = "Tepat Waktu"
	latenessLate     = "Terlambat"
	latenessUnscored = "-"
)

func (s *PresensiServiceImpl) annotate(row presensi.Presensi, date string, threshold rekap.DailyThreshold) presensi.PresensiRow {
	out := presensi.PresensiRow{
		IDPresensi:  row.IDPresensi,
		IDPegawai:   row.IDPegawai,
		NamaPegawai: row.NamaPegawai,
		NIPPegawai:  row.NIPPegawai,
		NamaOpd:     row.NamaOpd,
		JamMasuk:    row.JamMasuk,
		KetMasuk:    row.KetMasuk,
		Bukti:       row.Bukti,
		IsWeekend:   threshold.Context == rekap.ContextWeekend,
		IsHoliday:   threshold.Context == rekap.ContextHoliday,
		IsRamadan:   threshold.Context == rekap.ContextRamadan,
	}
	if threshold.HolidayName != "" {
		name := threshold.HolidayName
		out.HolidayName = &name
	}

	if !threshold.HasScoring {
		out.Lateness = latenessUnscored
		return out
	}

	late, minutes := s.engine.LatenessFor(row.JamMasuk, date, threshold)
	if late {
		out.Lateness = fmt.Sprintf("%s %d menit", latenessLate, minutes)
		out.LatenessMinutes = &minutes
	} else {
		out.Lateness = latenessOntime
	}
	return out
}

// dayWindow spans midnight through the last millisecond of day's calendar
// date in its own zone.
func dayWindow(day time.Time) (int64, int64) {
	start := day
	end := day.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}
