package izin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/service/file"
)

const defaultLimit = 10

// legacyDateLayout is the unpadded "D/M/YYYY" form the izin table stores.
const legacyDateLayout = "2/1/2006"

type IzinServiceImpl struct {
	izin.IzinRepository
	fileService file.FileService
}

func NewIzinService(repo izin.IzinRepository, fileService file.FileService) izin.IzinService {
	return &IzinServiceImpl{
		IzinRepository: repo,
		fileService:    fileService,
	}
}

// List implements izin.IzinService.
func (s *IzinServiceImpl) List(ctx context.Context, req izin.ListRequest) (izin.ListIzinResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = defaultLimit
	}

	rows, total, err := s.IzinRepository.List(ctx, req)
	if err != nil {
		return izin.ListIzinResponse{}, fmt.Errorf("list izin: %w", err)
	}

	resp := izin.ListIzinResponse{
		TotalCount: total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(req.Limit))),
		Data:       make([]izin.IzinResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Data = append(resp.Data, toResponse(row))
	}
	return resp, nil
}

// Create implements izin.IzinService. Wire dates arrive as ISO and are
// converted to the legacy storage format; new rows always start
// unverified.
func (s *IzinServiceImpl) Create(ctx context.Context, req izin.CreateIzinRequest) (izin.IzinResponse, error) {
	if err := req.Validate(); err != nil {
		return izin.IzinResponse{}, err
	}

	record := izin.Izin{
		IDPegawai:   req.IDPegawai,
		JenisIzin:   req.JenisIzin,
		Keterangan:  req.Keterangan,
		TanggalIzin: toLegacyDate(req.TanggalIzin),
	}
	if req.TanggalSelesai != "" {
		record.TanggalSelesai = toLegacyDate(req.TanggalSelesai)
	} else {
		record.TanggalSelesai = record.TanggalIzin
	}

	if req.File != nil {
		path, err := s.fileService.UploadIzinProof(ctx, req.IDPegawai, req.File, req.Filename)
		if err != nil {
			return izin.IzinResponse{}, fmt.Errorf("upload izin proof: %w", err)
		}
		record.Bukti = &path
	}

	created, err := s.IzinRepository.Create(ctx, record)
	if err != nil {
		return izin.IzinResponse{}, fmt.Errorf("create izin: %w", err)
	}
	return toResponse(created), nil
}

// Verify implements izin.IzinService. Verification is one-way.
func (s *IzinServiceImpl) Verify(ctx context.Context, idIzin int64) (izin.IzinResponse, error) {
	record, err := s.GetByID(ctx, idIzin)
	if err != nil {
		return izin.IzinResponse{}, err
	}
	if record.Verifikasi {
		return izin.IzinResponse{}, izin.ErrIzinAlreadyVerified
	}

	if err := s.SetVerifikasi(ctx, idIzin, true); err != nil {
		return izin.IzinResponse{}, fmt.Errorf("verify izin: %w", err)
	}
	record.Verifikasi = true
	return toResponse(record), nil
}

// Delete implements izin.IzinService. The proof photo is removed best
// effort; a missing file never blocks the row delete.
func (s *IzinServiceImpl) Delete(ctx context.Context, idIzin int64) error {
	record, err := s.GetByID(ctx, idIzin)
	if err != nil {
		if errors.Is(err, izin.ErrIzinNotFound) {
			return err
		}
		return fmt.Errorf("get izin: %w", err)
	}

	if record.Bukti != nil {
		_ = s.fileService.DeleteFile(ctx, *record.Bukti)
	}
	return s.IzinRepository.Delete(ctx, idIzin)
}

func toLegacyDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(legacyDateLayout)
}

func toResponse(record izin.Izin) izin.IzinResponse {
	return izin.IzinResponse{
		IDIzin:         record.IDIzin,
		IDPegawai:      record.IDPegawai,
		NamaPegawai:    record.NamaPegawai,
		NamaOpd:        record.NamaOpd,
		JenisIzin:      record.JenisIzin,
		Keterangan:     record.Keterangan,
		TanggalIzin:    record.TanggalIzin,
		TanggalSelesai: record.TanggalSelesai,
		Verifikasi:     record.Verifikasi,
		Bukti:          record.Bukti,
	}
}
