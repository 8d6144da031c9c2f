package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

type presensiRepository struct {
	db *database.DB
}

func NewPresensiRepository(db *database.DB) presensi.PresensiRepository {
	return &presensiRepository{db: db}
}

const presensiColumns = `
	pr.id_presensi, pr.id_pegawai, pr.jam_masuk, pr.ket_masuk, pr.bukti,
	pg.nama_pegawai, pg.nip_pegawai, pg.id_opd, o.nama_opd
`

// ListByWindow implements presensi.PresensiRepository. A limit below one
// disables pagination.
func (r *presensiRepository) ListByWindow(ctx context.Context, startEpoch, endEpoch int64, filter presensi.ListFilter, limit, offset int) ([]presensi.Presensi, int64, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		FROM presensi pr
		JOIN pegawai pg ON pg.id_pegawai = pr.id_pegawai
		LEFT JOIN opd o ON o.id_opd = pg.id_opd
	`)
	if filter.EselonOnly {
		sb.WriteString(` JOIN jabatan j ON j.id_jabatan = pg.id_jabatan `)
	}
	sb.WriteString(` WHERE pr.jam_masuk BETWEEN $1 AND $2 `)

	args := []interface{}{startEpoch, endEpoch}
	if filter.EselonOnly {
		sb.WriteString(` AND j.eselon IN (2, 3) `)
	}
	if filter.IDOpd != nil {
		args = append(args, *filter.IDOpd)
		fmt.Fprintf(&sb, " AND pg.id_opd = $%d ", len(args))
	}
	if filter.IDPegawai != nil {
		args = append(args, *filter.IDPegawai)
		fmt.Fprintf(&sb, " AND pr.id_pegawai = $%d ", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		fmt.Fprintf(&sb, " AND (pg.nama_pegawai ILIKE $%d OR pg.nip_pegawai ILIKE $%d) ", len(args), len(args))
	}
	base := sb.String()

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count presensi: %w", err)
	}

	query := "SELECT " + presensiColumns + base + " ORDER BY pr.jam_masuk ASC "
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d ", len(args))
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d ", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list presensi: %w", err)
	}
	defer rows.Close()

	var out []presensi.Presensi
	for rows.Next() {
		var p presensi.Presensi
		if err := rows.Scan(
			&p.IDPresensi, &p.IDPegawai, &p.JamMasuk, &p.KetMasuk, &p.Bukti,
			&p.NamaPegawai, &p.NIPPegawai, &p.IDOpd, &p.NamaOpd,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan presensi: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

// FetchRange implements presensi.PresensiRepository.
func (r *presensiRepository) FetchRange(ctx context.Context, startEpoch, endEpoch int64) ([]presensi.Presensi, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + presensiColumns + `
		FROM presensi pr
		JOIN pegawai pg ON pg.id_pegawai = pr.id_pegawai
		LEFT JOIN opd o ON o.id_opd = pg.id_opd
		WHERE pr.jam_masuk BETWEEN $1 AND $2
		ORDER BY pr.jam_masuk ASC
	`
	rows, err := q.Query(ctx, query, startEpoch, endEpoch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch presensi range: %w", err)
	}
	defer rows.Close()

	var out []presensi.Presensi
	for rows.Next() {
		var p presensi.Presensi
		if err := rows.Scan(
			&p.IDPresensi, &p.IDPegawai, &p.JamMasuk, &p.KetMasuk, &p.Bukti,
			&p.NamaPegawai, &p.NIPPegawai, &p.IDOpd, &p.NamaOpd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan presensi: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// HasCheckedIn implements presensi.PresensiRepository.
func (r *presensiRepository) HasCheckedIn(ctx context.Context, idPegawai int64, startEpoch, endEpoch int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM presensi
			WHERE id_pegawai = $1 AND jam_masuk BETWEEN $2 AND $3
		)
	`, idPegawai, startEpoch, endEpoch).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check presensi: %w", err)
	}
	return exists, nil
}

// Create implements presensi.PresensiRepository.
func (r *presensiRepository) Create(ctx context.Context, p presensi.Presensi) (presensi.Presensi, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO presensi (id_pegawai, jam_masuk, ket_masuk, bukti)
		VALUES ($1, $2, $3, $4)
		RETURNING id_presensi
	`, p.IDPegawai, p.JamMasuk, p.KetMasuk, p.Bukti).Scan(&p.IDPresensi)
	if err != nil {
		return presensi.Presensi{}, fmt.Errorf("failed to create presensi: %w", err)
	}

	err = q.QueryRow(ctx, `
		SELECT pg.nama_pegawai, pg.nip_pegawai, pg.id_opd, o.nama_opd
		FROM pegawai pg
		LEFT JOIN opd o ON o.id_opd = pg.id_opd
		WHERE pg.id_pegawai = $1
	`, p.IDPegawai).Scan(&p.NamaPegawai, &p.NIPPegawai, &p.IDOpd, &p.NamaOpd)
	if err != nil {
		return presensi.Presensi{}, fmt.Errorf("failed to load pegawai for presensi: %w", err)
	}
	return p, nil
}
