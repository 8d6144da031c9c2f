package presensi

import "context"

// PresensiService defines the single-day attendance listing and the
// check-in feed.
type PresensiService interface {
	// List returns one day of attendance rows annotated with computed
	// lateness, paginated, plus late/on-time totals for the page's day.
	List(ctx context.Context, req ListRequest) (ListResult, error)

	// ListEselon returns today's check-ins of echelon 2 and 3 position
	// holders, optionally narrowed to one OPD.
	ListEselon(ctx context.Context, idOpd *int64) ([]PresensiRow, error)

	// CheckIn records an attendance entry timestamped now and publishes it
	// to the live stream.
	CheckIn(ctx context.Context, req CheckInRequest) (PresensiRow, error)
}
