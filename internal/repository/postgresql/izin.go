package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

type izinRepository struct {
	db *database.DB
}

func NewIzinRepository(db *database.DB) izin.IzinRepository {
	return &izinRepository{db: db}
}

// The legacy verifikasi column stores 0/1 integers.
const izinColumns = `
	i.id_izin, i.id_pegawai, i.jenis_izin, i.keterangan,
	i.tanggal_izin, i.tanggal_selesai, (i.verifikasi = 1), i.bukti,
	pg.nama_pegawai, pg.nip_pegawai, pg.id_opd, o.nama_opd
`

const izinJoins = `
	FROM izin i
	JOIN pegawai pg ON pg.id_pegawai = i.id_pegawai
	LEFT JOIN opd o ON o.id_opd = pg.id_opd
`

func scanIzin(row pgx.Row) (izin.Izin, error) {
	var i izin.Izin
	err := row.Scan(
		&i.IDIzin, &i.IDPegawai, &i.JenisIzin, &i.Keterangan,
		&i.TanggalIzin, &i.TanggalSelesai, &i.Verifikasi, &i.Bukti,
		&i.NamaPegawai, &i.NIPPegawai, &i.IDOpd, &i.NamaOpd,
	)
	return i, err
}

// FetchVerified implements izin.IzinRepository.
func (r *izinRepository) FetchVerified(ctx context.Context) ([]izin.Izin, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+izinColumns+izinJoins+" WHERE i.verifikasi = 1")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch verified izin: %w", err)
	}
	defer rows.Close()

	var out []izin.Izin
	for rows.Next() {
		record, err := scanIzin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan izin: %w", err)
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// List implements izin.IzinRepository.
func (r *izinRepository) List(ctx context.Context, req izin.ListRequest) ([]izin.Izin, int64, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(izinJoins)
	sb.WriteString(" WHERE 1=1 ")

	var args []interface{}
	if req.IDOpd != nil {
		args = append(args, *req.IDOpd)
		fmt.Fprintf(&sb, " AND pg.id_opd = $%d ", len(args))
	}
	if req.IDPegawai != nil {
		args = append(args, *req.IDPegawai)
		fmt.Fprintf(&sb, " AND i.id_pegawai = $%d ", len(args))
	}
	base := sb.String()

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count izin: %w", err)
	}

	args = append(args, req.Limit)
	limitPos := len(args)
	args = append(args, (req.Page-1)*req.Limit)
	offsetPos := len(args)
	query := fmt.Sprintf("SELECT %s %s ORDER BY i.id_izin DESC LIMIT $%d OFFSET $%d",
		izinColumns, base, limitPos, offsetPos)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list izin: %w", err)
	}
	defer rows.Close()

	var out []izin.Izin
	for rows.Next() {
		record, err := scanIzin(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan izin: %w", err)
		}
		out = append(out, record)
	}
	return out, total, rows.Err()
}

// GetByID implements izin.IzinRepository.
func (r *izinRepository) GetByID(ctx context.Context, idIzin int64) (izin.Izin, error) {
	q := GetQuerier(ctx, r.db)

	record, err := scanIzin(q.QueryRow(ctx, "SELECT "+izinColumns+izinJoins+" WHERE i.id_izin = $1", idIzin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return izin.Izin{}, izin.ErrIzinNotFound
		}
		return izin.Izin{}, fmt.Errorf("failed to get izin: %w", err)
	}
	return record, nil
}

// Create implements izin.IzinRepository.
func (r *izinRepository) Create(ctx context.Context, i izin.Izin) (izin.Izin, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO izin (id_pegawai, jenis_izin, keterangan, tanggal_izin, tanggal_selesai, verifikasi, bukti)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING id_izin
	`, i.IDPegawai, i.JenisIzin, i.Keterangan, i.TanggalIzin, i.TanggalSelesai, i.Bukti).Scan(&i.IDIzin)
	if err != nil {
		return izin.Izin{}, fmt.Errorf("failed to create izin: %w", err)
	}
	return r.GetByID(ctx, i.IDIzin)
}

// SetVerifikasi implements izin.IzinRepository.
func (r *izinRepository) SetVerifikasi(ctx context.Context, idIzin int64, verified bool) error {
	q := GetQuerier(ctx, r.db)

	value := 0
	if verified {
		value = 1
	}
	tag, err := q.Exec(ctx, "UPDATE izin SET verifikasi = $1 WHERE id_izin = $2", value, idIzin)
	if err != nil {
		return fmt.Errorf("failed to update izin verifikasi: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return izin.ErrIzinNotFound
	}
	return nil
}

// Delete implements izin.IzinRepository.
func (r *izinRepository) Delete(ctx context.Context, idIzin int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM izin WHERE id_izin = $1", idIzin)
	if err != nil {
		return fmt.Errorf("failed to delete izin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return izin.ErrIzinNotFound
	}
	return nil
}
