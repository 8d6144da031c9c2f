package kegiatan

import (
	"context"
	"time"
)

// ListFilter narrows the month listing. Bulan/Tahun match the legacy
// unpadded "D/M/YYYY" storage form of tanggal_kegiatan.
type ListFilter struct {
	Bulan      int
	Tahun      int
	IDPegawai  *int64
	IDOpd      *int64
	Verifikasi *bool
}

type KegiatanRepository interface {
	// ListByMonth returns activity rows for the month, joined with pegawai,
	// OPD, and the linked check-in.
	ListByMonth(ctx context.Context, filter ListFilter) ([]Kegiatan, error)

	// FindToday returns the employee's activity row created inside the
	// window, newest first.
	FindToday(ctx context.Context, idPegawai int64, start, end time.Time) (Kegiatan, error)

	// GetByID returns a single activity row.
	GetByID(ctx context.Context, idKegiatan int64) (Kegiatan, error)

	// Create inserts an activity row.
	Create(ctx context.Context, k Kegiatan) (Kegiatan, error)

	// Update replaces the mutable columns of an activity row.
	Update(ctx context.Context, k Kegiatan) error

	// Delete removes an activity row.
	Delete(ctx context.Context, idKegiatan int64) error
}
