package kegiatan

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/kegiatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
	"github.com/pemda-presensi/presensi-backend-go/internal/service/file"
)

// legacyDateLayout is the unpadded "D/M/YYYY" form the kegiatan table
// stores, matching the izin date columns.
const legacyDateLayout = "2/1/2006"

type KegiatanServiceImpl struct {
	kegiatan.KegiatanRepository
	fileService file.FileService
	loc         *time.Location
}

func NewKegiatanService(repo kegiatan.KegiatanRepository, fileService file.FileService, cfg config.AttendanceConfig) kegiatan.KegiatanService {
	return &KegiatanServiceImpl{
		KegiatanRepository: repo,
		fileService:        fileService,
		loc:                cfg.Location(),
	}
}

// ListMonth implements kegiatan.KegiatanService. Rows are ordered by
// activity date ascending; rows whose legacy date does not parse sort last
// instead of failing the listing.
func (s *KegiatanServiceImpl) ListMonth(ctx context.Context, req kegiatan.MonthRequest) ([]kegiatan.KegiatanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.ListByMonth(ctx, kegiatan.ListFilter{
		Bulan:      req.Bulan,
		Tahun:      req.Tahun,
		IDPegawai:  req.IDPegawai,
		IDOpd:      req.IDOpd,
		Verifikasi: req.Verifikasi,
	})
	if err != nil {
		return nil, fmt.Errorf("list kegiatan: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		di, iOK := validator.ParseLegacyDate(rows[i].TanggalKegiatan)
		dj, jOK := validator.ParseLegacyDate(rows[j].TanggalKegiatan)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return rows[i].IDKegiatan < rows[j].IDKegiatan
		}
		return di.Before(dj)
	})

	out := make([]kegiatan.KegiatanResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, nil
}

// Today implements kegiatan.KegiatanService.
func (s *KegiatanServiceImpl) Today(ctx context.Context, idPegawai int64) (kegiatan.KegiatanResponse, error) {
	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 1)

	record, err := s.FindToday(ctx, idPegawai, start, end)
	if err != nil {
		return kegiatan.KegiatanResponse{}, err
	}
	return toResponse(record), nil
}

// GetByID implements kegiatan.KegiatanService.
func (s *KegiatanServiceImpl) GetByID(ctx context.Context, idKegiatan int64) (kegiatan.KegiatanResponse, error) {
	record, err := s.KegiatanRepository.GetByID(ctx, idKegiatan)
	if err != nil {
		return kegiatan.KegiatanResponse{}, err
	}
	return toResponse(record), nil
}

// Create implements kegiatan.KegiatanService. New rows always start
// unverified.
func (s *KegiatanServiceImpl) Create(ctx context.Context, req kegiatan.CreateKegiatanRequest) (kegiatan.KegiatanResponse, error) {
	if err := req.Validate(); err != nil {
		return kegiatan.KegiatanResponse{}, err
	}

	record := kegiatan.Kegiatan{
		IDPegawai:       req.IDPegawai,
		IDPresensi:      req.IDPresensi,
		Kegiatan:        req.Kegiatan,
		Catatan:         req.Catatan,
		TanggalKegiatan: toLegacyDate(req.TanggalKegiatan),
	}

	if req.File != nil {
		path, err := s.fileService.UploadKegiatanProof(ctx, req.IDPegawai, req.File, req.Filename)
		if err != nil {
			return kegiatan.KegiatanResponse{}, fmt.Errorf("upload kegiatan proof: %w", err)
		}
		record.URLFile = &path
	}

	created, err := s.KegiatanRepository.Create(ctx, record)
	if err != nil {
		return kegiatan.KegiatanResponse{}, fmt.Errorf("create kegiatan: %w", err)
	}
	return toResponse(created), nil
}

// Update implements kegiatan.KegiatanService. Nil fields keep their stored
// value; a new photo replaces the old one.
func (s *KegiatanServiceImpl) Update(ctx context.Context, idKegiatan int64, req kegiatan.UpdateKegiatanRequest) (kegiatan.KegiatanResponse, error) {
	if err := req.Validate(); err != nil {
		return kegiatan.KegiatanResponse{}, err
	}

	record, err := s.KegiatanRepository.GetByID(ctx, idKegiatan)
	if err != nil {
		return kegiatan.KegiatanResponse{}, err
	}

	if req.IDPresensi != nil {
		record.IDPresensi = req.IDPresensi
	}
	if req.Kegiatan != nil {
		record.Kegiatan = *req.Kegiatan
	}
	if req.TanggalKegiatan != nil {
		record.TanggalKegiatan = toLegacyDate(*req.TanggalKegiatan)
	}
	if req.Catatan != nil {
		record.Catatan = req.Catatan
	}
	if req.Verifikasi != nil {
		record.Verifikasi = *req.Verifikasi
	}
	if req.EditedBy != nil {
		record.EditedBy = req.EditedBy
	}

	if req.File != nil {
		path, err := s.fileService.UploadKegiatanProof(ctx, record.IDPegawai, req.File, req.Filename)
		if err != nil {
			return kegiatan.KegiatanResponse{}, fmt.Errorf("upload kegiatan proof: %w", err)
		}
		if record.URLFile != nil {
			_ = s.fileService.DeleteFile(ctx, *record.URLFile)
		}
		record.URLFile = &path
	}

	if err := s.KegiatanRepository.Update(ctx, record); err != nil {
		return kegiatan.KegiatanResponse{}, fmt.Errorf("update kegiatan: %w", err)
	}
	return s.GetByID(ctx, idKegiatan)
}

// Delete implements kegiatan.KegiatanService. The proof photo is removed
// best effort; a missing file never blocks the row delete.
func (s *KegiatanServiceImpl) Delete(ctx context.Context, idKegiatan int64) error {
	record, err := s.KegiatanRepository.GetByID(ctx, idKegiatan)
	if err != nil {
		if errors.Is(err, kegiatan.ErrKegiatanNotFound) {
			return err
		}
		return fmt.Errorf("get kegiatan: %w", err)
	}

	if record.URLFile != nil {
		_ = s.fileService.DeleteFile(ctx, *record.URLFile)
	}
	return s.KegiatanRepository.Delete(ctx, idKegiatan)
}

func toLegacyDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(legacyDateLayout)
}

func toResponse(record kegiatan.Kegiatan) kegiatan.KegiatanResponse {
	return kegiatan.KegiatanResponse{
		IDKegiatan:      record.IDKegiatan,
		IDPegawai:       record.IDPegawai,
		NamaPegawai:     record.NamaPegawai,
		NIPPegawai:      record.NIPPegawai,
		NamaOpd:         record.NamaOpd,
		IDPresensi:      record.IDPresensi,
		JamMasuk:        record.JamMasuk,
		Kegiatan:        record.Kegiatan,
		TanggalKegiatan: record.TanggalKegiatan,
		Catatan:         record.Catatan,
		Verifikasi:      record.Verifikasi,
		URLFile:         record.URLFile,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}
