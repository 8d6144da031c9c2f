package presensi

import "context"

// ListFilter narrows the single-day listing. EselonOnly restricts rows to
// employees holding an echelon 2 or 3 position.
type ListFilter struct {
	IDOpd      *int64
	IDPegawai  *int64
	Search     string
	EselonOnly bool
}

type PresensiRepository interface {
	// ListByWindow returns rows whose jam_masuk falls inside the epoch-millis
	// window, joined with pegawai and OPD, ordered by jam_masuk ascending,
	// with the unpaginated total.
	ListByWindow(ctx context.Context, startEpoch, endEpoch int64, filter ListFilter, limit, offset int) ([]Presensi, int64, error)

	// FetchRange returns every row in the window, joined with pegawai and
	// OPD, for aggregation.
	FetchRange(ctx context.Context, startEpoch, endEpoch int64) ([]Presensi, error)

	// HasCheckedIn reports whether the employee already has a row inside the
	// window.
	HasCheckedIn(ctx context.Context, idPegawai int64, startEpoch, endEpoch int64) (bool, error)

	// Create inserts a check-in row and returns it joined with pegawai data.
	Create(ctx context.Context, p Presensi) (Presensi, error)
}
