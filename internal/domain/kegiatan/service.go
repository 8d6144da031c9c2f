package kegiatan

import "context"

// KegiatanService defines daily activity-report management.
type KegiatanService interface {
	// ListMonth returns one month of reports for an employee or an OPD,
	// ordered by activity date ascending.
	ListMonth(ctx context.Context, req MonthRequest) ([]KegiatanResponse, error)

	// Today returns the employee's report created today (civil timezone).
	Today(ctx context.Context, idPegawai int64) (KegiatanResponse, error)

	GetByID(ctx context.Context, idKegiatan int64) (KegiatanResponse, error)
	Create(ctx context.Context, req CreateKegiatanRequest) (KegiatanResponse, error)
	Update(ctx context.Context, idKegiatan int64, req UpdateKegiatanRequest) (KegiatanResponse, error)
	Delete(ctx context.Context, idKegiatan int64) error
}
