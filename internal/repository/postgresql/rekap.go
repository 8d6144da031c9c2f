package postgresql

import (
	"context"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/rekap"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

// rekapRepository composes the snapshot fetches the reporting engine needs
// from the table-level repositories.
type rekapRepository struct {
	hariLibur harilibur.HariLiburRepository
	presensi  presensi.PresensiRepository
	izin      izin.IzinRepository
	pegawai   pegawai.PegawaiRepository
}

func NewRekapRepository(db *database.DB) rekap.RekapRepository {
	return &rekapRepository{
		hariLibur: NewHariLiburRepository(db),
		presensi:  NewPresensiRepository(db),
		izin:      NewIzinRepository(db),
		pegawai:   NewPegawaiRepository(db),
	}
}

func (r *rekapRepository) FetchHariLibur(ctx context.Context, startDate, endDate string) ([]harilibur.HariLibur, error) {
	return r.hariLibur.FetchOverlapping(ctx, startDate, endDate)
}

func (r *rekapRepository) FetchPresensi(ctx context.Context, startEpoch, endEpoch int64) ([]presensi.Presensi, error) {
	return r.presensi.FetchRange(ctx, startEpoch, endEpoch)
}

func (r *rekapRepository) FetchVerifiedIzin(ctx context.Context) ([]izin.Izin, error) {
	return r.izin.FetchVerified(ctx)
}

func (r *rekapRepository) FetchPegawai(ctx context.Context, filter pegawai.Filter) ([]pegawai.Pegawai, error) {
	return r.pegawai.List(ctx, filter)
}
