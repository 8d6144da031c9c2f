package rekap

import "context"

// RekapService defines the attendance reconciliation reports.
type RekapService interface {
	// RekapPersentase computes per-OPD totals and percentages across the
	// whole range.
	RekapPersentase(ctx context.Context, req RangeRequest) ([]RekapPersentaseRow, error)

	// RekapTabel computes the per-OPD per-date breakdown with per-employee
	// detail, honoring the optional employee-set filters.
	RekapTabel(ctx context.Context, req TabelRequest) (RekapTabelResult, error)
}
