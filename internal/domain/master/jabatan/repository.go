package jabatan

import "context"

type JabatanRepository interface {
	// GetByID returns a single position.
	GetByID(ctx context.Context, idJabatan int64) (Jabatan, error)

	// List returns positions matching the filter, joined with OPD name.
	List(ctx context.Context, filter ListFilter) ([]Jabatan, error)

	// Create inserts a new position.
	Create(ctx context.Context, j Jabatan) (Jabatan, error)

	// Update modifies an existing position.
	Update(ctx context.Context, j Jabatan) error

	// Delete removes a position.
	Delete(ctx context.Context, idJabatan int64) error
}
