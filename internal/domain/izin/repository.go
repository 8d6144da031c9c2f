package izin

import "context"

type IzinRepository interface {
	// FetchVerified returns every verified leave row joined with pegawai
	// and OPD. The reporting engine filters by date in memory because the
	// legacy date columns are free-form strings.
	FetchVerified(ctx context.Context) ([]Izin, error)

	// List returns leave rows matching the filter, newest first, with the
	// unpaginated total.
	List(ctx context.Context, req ListRequest) ([]Izin, int64, error)

	// GetByID returns a single leave row.
	GetByID(ctx context.Context, idIzin int64) (Izin, error)

	// Create inserts a leave row.
	Create(ctx context.Context, i Izin) (Izin, error)

	// SetVerifikasi flips the verification flag.
	SetVerifikasi(ctx context.Context, idIzin int64, verified bool) error

	// Delete removes a leave row.
	Delete(ctx context.Context, idIzin int64) error
}
