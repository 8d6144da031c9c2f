package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/jabatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/opd"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/pangkat"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

// ==================== OPD ====================

type opdRepository struct {
	db *database.DB
}

func NewOpdRepository(db *database.DB) opd.OpdRepository {
	return &opdRepository{db: db}
}

func (r *opdRepository) List(ctx context.Context) ([]opd.Opd, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT id_opd, nama_opd FROM opd ORDER BY nama_opd")
	if err != nil {
		return nil, fmt.Errorf("failed to list opd: %w", err)
	}
	defer rows.Close()

	var out []opd.Opd
	for rows.Next() {
		var o opd.Opd
		if err := rows.Scan(&o.IDOpd, &o.NamaOpd); err != nil {
			return nil, fmt.Errorf("failed to scan opd: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ==================== PANGKAT ====================

type pangkatRepository struct {
	db *database.DB
}

func NewPangkatRepository(db *database.DB) pangkat.PangkatRepository {
	return &pangkatRepository{db: db}
}

func (r *pangkatRepository) List(ctx context.Context) ([]pangkat.Pangkat, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT id_pangkat, nama_pangkat, golongan FROM pangkat ORDER BY nama_pangkat")
	if err != nil {
		return nil, fmt.Errorf("failed to list pangkat: %w", err)
	}
	defer rows.Close()

	var out []pangkat.Pangkat
	for rows.Next() {
		var p pangkat.Pangkat
		if err := rows.Scan(&p.IDPangkat, &p.NamaPangkat, &p.Golongan); err != nil {
			return nil, fmt.Errorf("failed to scan pangkat: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ==================== JABATAN ====================

type jabatanRepository struct {
	db *database.DB
}

func NewJabatanRepository(db *database.DB) jabatan.JabatanRepository {
	return &jabatanRepository{db: db}
}

const jabatanColumns = `
	j.id_jabatan, j.id_opd, j.nama_jabatan, j.tupoksi, j.eselon,
	j.edited_by, j.created_at, j.updated_at, o.nama_opd
`

func (r *jabatanRepository) GetByID(ctx context.Context, idJabatan int64) (jabatan.Jabatan, error) {
	q := GetQuerier(ctx, r.db)

	var j jabatan.Jabatan
	err := q.QueryRow(ctx, `
		SELECT `+jabatanColumns+`
		FROM jabatan j
		LEFT JOIN opd o ON o.id_opd = j.id_opd
		WHERE j.id_jabatan = $1
	`, idJabatan).Scan(
		&j.IDJabatan, &j.IDOpd, &j.NamaJabatan, &j.Tupoksi, &j.Eselon,
		&j.EditedBy, &j.CreatedAt, &j.UpdatedAt, &j.NamaOpd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jabatan.Jabatan{}, jabatan.ErrJabatanNotFound
		}
		return jabatan.Jabatan{}, fmt.Errorf("failed to get jabatan: %w", err)
	}
	return j, nil
}

func (r *jabatanRepository) List(ctx context.Context, filter jabatan.ListFilter) ([]jabatan.Jabatan, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + jabatanColumns + `
		FROM jabatan j
		LEFT JOIN opd o ON o.id_opd = j.id_opd
		WHERE 1=1
	`)

	var args []interface{}
	if filter.IDOpd != nil {
		args = append(args, *filter.IDOpd)
		fmt.Fprintf(&sb, " AND j.id_opd = $%d ", len(args))
	}
	if filter.EselonOnly {
		sb.WriteString(" AND j.eselon IN (2, 3) ")
	}
	sb.WriteString(" ORDER BY o.nama_opd NULLS LAST, j.nama_jabatan ")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jabatan: %w", err)
	}
	defer rows.Close()

	var out []jabatan.Jabatan
	for rows.Next() {
		var j jabatan.Jabatan
		if err := rows.Scan(
			&j.IDJabatan, &j.IDOpd, &j.NamaJabatan, &j.Tupoksi, &j.Eselon,
			&j.EditedBy, &j.CreatedAt, &j.UpdatedAt, &j.NamaOpd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan jabatan: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *jabatanRepository) Create(ctx context.Context, j jabatan.Jabatan) (jabatan.Jabatan, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO jabatan (id_opd, nama_jabatan, tupoksi, eselon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id_jabatan, created_at, updated_at
	`, j.IDOpd, j.NamaJabatan, j.Tupoksi, j.Eselon).Scan(&j.IDJabatan, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return jabatan.Jabatan{}, fmt.Errorf("failed to create jabatan: %w", err)
	}
	return j, nil
}

func (r *jabatanRepository) Update(ctx context.Context, j jabatan.Jabatan) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE jabatan
		SET id_opd = $1, nama_jabatan = $2, tupoksi = $3, eselon = $4,
			edited_by = $5, updated_at = NOW()
		WHERE id_jabatan = $6
	`, j.IDOpd, j.NamaJabatan, j.Tupoksi, j.Eselon, j.EditedBy, j.IDJabatan)
	if err != nil {
		return fmt.Errorf("failed to update jabatan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return jabatan.ErrJabatanNotFound
	}
	return nil
}

func (r *jabatanRepository) Delete(ctx context.Context, idJabatan int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM jabatan WHERE id_jabatan = $1", idJabatan)
	if err != nil {
		return fmt.Errorf("failed to delete jabatan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return jabatan.ErrJabatanNotFound
	}
	return nil
}
