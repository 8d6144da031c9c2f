package opd

import "context"

type OpdRepository interface {
	// List returns all organizational units ordered by name.
	List(ctx context.Context) ([]Opd, error)
}
