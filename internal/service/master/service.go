package master

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/jabatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/opd"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/pangkat"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
)

type MasterService interface {
	// Reference lists for the dashboard filter dropdowns.
	ListOpd(ctx context.Context) ([]opd.Opd, error)
	ListPangkat(ctx context.Context) ([]pangkat.Pangkat, error)
	ListPegawai(ctx context.Context, filter pegawai.Filter) ([]pegawai.PegawaiResponse, error)

	// Jabatan operations
	ListJabatan(ctx context.Context, filter jabatan.ListFilter) ([]jabatan.JabatanResponse, error)
	GetJabatan(ctx context.Context, idJabatan int64) (jabatan.JabatanResponse, error)
	CreateJabatan(ctx context.Context, req jabatan.CreateJabatanRequest) (jabatan.JabatanResponse, error)
	UpdateJabatan(ctx context.Context, req jabatan.UpdateJabatanRequest) error
	DeleteJabatan(ctx context.Context, idJabatan int64) error

	// Hari libur operations
	ListHariLibur(ctx context.Context, startDate, endDate string) ([]harilibur.HariLiburResponse, error)
	CreateHariLibur(ctx context.Context, req harilibur.CreateHariLiburRequest) (harilibur.HariLiburResponse, error)
	DeleteHariLibur(ctx context.Context, id int64) error
}

type masterServiceImpl struct {
	opdRepo       opd.OpdRepository
	pangkatRepo   pangkat.PangkatRepository
	pegawaiRepo   pegawai.PegawaiRepository
	jabatanRepo   jabatan.JabatanRepository
	hariLiburRepo harilibur.HariLiburRepository
}

func NewMasterService(
	opdRepo opd.OpdRepository,
	pangkatRepo pangkat.PangkatRepository,
	pegawaiRepo pegawai.PegawaiRepository,
	jabatanRepo jabatan.JabatanRepository,
	hariLiburRepo harilibur.HariLiburRepository,
) MasterService {
	return &masterServiceImpl{
		opdRepo:       opdRepo,
		pangkatRepo:   pangkatRepo,
		pegawaiRepo:   pegawaiRepo,
		jabatanRepo:   jabatanRepo,
		hariLiburRepo: hariLiburRepo,
	}
}

func (s *masterServiceImpl) ListOpd(ctx context.Context) ([]opd.Opd, error) {
	rows, err := s.opdRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list opd: %w", err)
	}
	return rows, nil
}

func (s *masterServiceImpl) ListPangkat(ctx context.Context) ([]pangkat.Pangkat, error) {
	rows, err := s.pangkatRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pangkat: %w", err)
	}
	return rows, nil
}

func (s *masterServiceImpl) ListPegawai(ctx context.Context, filter pegawai.Filter) ([]pegawai.PegawaiResponse, error) {
	rows, err := s.pegawaiRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pegawai: %w", err)
	}

	out := make([]pegawai.PegawaiResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, pegawai.PegawaiResponse{
			IDPegawai:   row.IDPegawai,
			NIPPegawai:  row.NIPPegawai,
			NamaPegawai: row.NamaPegawai,
			IDOpd:       row.IDOpd,
			NamaOpd:     row.NamaOpd,
		})
	}
	return out, nil
}

// ==================== JABATAN OPERATIONS ====================

func (s *masterServiceImpl) ListJabatan(ctx context.Context, filter jabatan.ListFilter) ([]jabatan.JabatanResponse, error) {
	rows, err := s.jabatanRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jabatan: %w", err)
	}

	out := make([]jabatan.JabatanResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJabatanResponse(row))
	}
	return out, nil
}

func (s *masterServiceImpl) GetJabatan(ctx context.Context, idJabatan int64) (jabatan.JabatanResponse, error) {
	row, err := s.jabatanRepo.GetByID(ctx, idJabatan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jabatan.JabatanResponse{}, jabatan.ErrJabatanNotFound
		}
		return jabatan.JabatanResponse{}, fmt.Errorf("failed to get jabatan: %w", err)
	}
	return toJabatanResponse(row), nil
}

func (s *masterServiceImpl) CreateJabatan(ctx context.Context, req jabatan.CreateJabatanRequest) (jabatan.JabatanResponse, error) {
	if err := req.Validate(); err != nil {
		return jabatan.JabatanResponse{}, err
	}

	created, err := s.jabatanRepo.Create(ctx, jabatan.Jabatan{
		IDOpd:       req.IDOpd,
		NamaJabatan: req.NamaJabatan,
		Tupoksi:     req.Tupoksi,
		Eselon:      req.Eselon,
	})
	if err != nil {
		return jabatan.JabatanResponse{}, fmt.Errorf("failed to create jabatan: %w", err)
	}
	return toJabatanResponse(created), nil
}

// UpdateJabatan modifies only the fields the request carries.
func (s *masterServiceImpl) UpdateJabatan(ctx context.Context, req jabatan.UpdateJabatanRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.jabatanRepo.GetByID(ctx, req.IDJabatan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jabatan.ErrJabatanNotFound
		}
		return fmt.Errorf("failed to get jabatan: %w", err)
	}

	if req.IDOpd != nil {
		current.IDOpd = *req.IDOpd
	}
	if req.NamaJabatan != nil {
		current.NamaJabatan = *req.NamaJabatan
	}
	if req.Tupoksi != nil {
		current.Tupoksi = req.Tupoksi
	}
	if req.Eselon != nil {
		current.Eselon = req.Eselon
	}
	if req.EditedBy != nil {
		current.EditedBy = req.EditedBy
	}
	current.UpdatedAt = time.Now()

	if err := s.jabatanRepo.Update(ctx, current); err != nil {
		return fmt.Errorf("failed to update jabatan: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteJabatan(ctx context.Context, idJabatan int64) error {
	if _, err := s.jabatanRepo.GetByID(ctx, idJabatan); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jabatan.ErrJabatanNotFound
		}
		return fmt.Errorf("failed to get jabatan: %w", err)
	}
	if err := s.jabatanRepo.Delete(ctx, idJabatan); err != nil {
		return fmt.Errorf("failed to delete jabatan: %w", err)
	}
	return nil
}

// ==================== HARI LIBUR OPERATIONS ====================

func (s *masterServiceImpl) ListHariLibur(ctx context.Context, startDate, endDate string) ([]harilibur.HariLiburResponse, error) {
	rows, err := s.hariLiburRepo.FetchOverlapping(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list hari libur: %w", err)
	}

	out := make([]harilibur.HariLiburResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toHariLiburResponse(row))
	}
	return out, nil
}

func (s *masterServiceImpl) CreateHariLibur(ctx context.Context, req harilibur.CreateHariLiburRequest) (harilibur.HariLiburResponse, error) {
	if err := req.Validate(); err != nil {
		return harilibur.HariLiburResponse{}, err
	}

	record := harilibur.HariLibur{
		HolidayName: req.HolidayName,
		Type:        req.Type,
	}
	record.DateStart, _ = time.Parse("2006-01-02", req.DateStart)
	if req.DateEnd != "" {
		end, _ := time.Parse("2006-01-02", req.DateEnd)
		record.DateEnd = &end
	}

	created, err := s.hariLiburRepo.Create(ctx, record)
	if err != nil {
		return harilibur.HariLiburResponse{}, fmt.Errorf("failed to create hari libur: %w", err)
	}
	return toHariLiburResponse(created), nil
}

func (s *masterServiceImpl) DeleteHariLibur(ctx context.Context, id int64) error {
	if err := s.hariLiburRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, harilibur.ErrHariLiburNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete hari libur: %w", err)
	}
	return nil
}

func toJabatanResponse(row jabatan.Jabatan) jabatan.JabatanResponse {
	return jabatan.JabatanResponse{
		IDJabatan:   row.IDJabatan,
		IDOpd:       row.IDOpd,
		NamaJabatan: row.NamaJabatan,
		Tupoksi:     row.Tupoksi,
		Eselon:      row.Eselon,
		NamaOpd:     row.NamaOpd,
	}
}

func toHariLiburResponse(row harilibur.HariLibur) harilibur.HariLiburResponse {
	resp := harilibur.HariLiburResponse{
		ID:          row.ID,
		HolidayName: row.HolidayName,
		Type:        row.Type,
		DateStart:   row.DateStart.Format("2006-01-02"),
	}
	if row.DateEnd != nil {
		end := row.DateEnd.Format("2006-01-02")
		resp.DateEnd = &end
	}
	return resp
}
