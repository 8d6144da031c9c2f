package harilibur

import "context"

type HariLiburRepository interface {
	// FetchOverlapping returns every period intersecting the inclusive
	// [startDate, endDate] range (ISO dates).
	FetchOverlapping(ctx context.Context, startDate, endDate string) ([]HariLibur, error)

	// Create inserts a period.
	Create(ctx context.Context, h HariLibur) (HariLibur, error)

	// Delete removes a period.
	Delete(ctx context.Context, id int64) error
}
