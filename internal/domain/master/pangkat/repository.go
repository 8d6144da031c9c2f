package pangkat

import "context"

type PangkatRepository interface {
	// List returns all ranks ordered by name.
	List(ctx context.Context) ([]Pangkat, error)
}
