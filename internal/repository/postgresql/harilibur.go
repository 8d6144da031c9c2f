package postgresql

import (
	"context"
	"fmt"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

type hariLiburRepository struct {
	db *database.DB
}

func NewHariLiburRepository(db *database.DB) harilibur.HariLiburRepository {
	return &hariLiburRepository{db: db}
}

// FetchOverlapping implements harilibur.HariLiburRepository. A null
// date_end means a single-day period, so overlap falls back to date_start.
func (r *hariLiburRepository) FetchOverlapping(ctx context.Context, startDate, endDate string) ([]harilibur.HariLibur, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, holiday_name, type, date_start, date_end
		FROM hari_libur
		WHERE date_start <= $2::date
		  AND COALESCE(date_end, date_start) >= $1::date
		ORDER BY date_start
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hari libur: %w", err)
	}
	defer rows.Close()

	var out []harilibur.HariLibur
	for rows.Next() {
		var h harilibur.HariLibur
		if err := rows.Scan(&h.ID, &h.HolidayName, &h.Type, &h.DateStart, &h.DateEnd); err != nil {
			return nil, fmt.Errorf("failed to scan hari libur: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Create implements harilibur.HariLiburRepository.
func (r *hariLiburRepository) Create(ctx context.Context, h harilibur.HariLibur) (harilibur.HariLibur, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO hari_libur (holiday_name, type, date_start, date_end)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, h.HolidayName, h.Type, h.DateStart, h.DateEnd).Scan(&h.ID)
	if err != nil {
		return harilibur.HariLibur{}, fmt.Errorf("failed to create hari libur: %w", err)
	}
	return h, nil
}

// Delete implements harilibur.HariLiburRepository.
func (r *hariLiburRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM hari_libur WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete hari libur: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return harilibur.ErrHariLiburNotFound
	}
	return nil
}
