package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/kegiatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

type kegiatanRepository struct {
	db *database.DB
}

func NewKegiatanRepository(db *database.DB) kegiatan.KegiatanRepository {
	return &kegiatanRepository{db: db}
}

// The legacy verifikasi column stores 0/1 integers, like izin.
const kegiatanColumns = `
	k.id_kegiatan, k.id_pegawai, k.id_presensi, k.kegiatan, k.url_file,
	k.tanggal_kegiatan, k.catatan, (k.verifikasi = 1), k.edited_by,
	k.created_at, k.updated_at,
	pg.nama_pegawai, pg.nip_pegawai, pg.id_opd, o.nama_opd, pr.jam_masuk
`

const kegiatanJoins = `
	FROM kegiatan k
	JOIN pegawai pg ON pg.id_pegawai = k.id_pegawai
	LEFT JOIN opd o ON o.id_opd = pg.id_opd
	LEFT JOIN presensi pr ON pr.id_presensi = k.id_presensi
`

func scanKegiatan(row pgx.Row) (kegiatan.Kegiatan, error) {
	var k kegiatan.Kegiatan
	err := row.Scan(
		&k.IDKegiatan, &k.IDPegawai, &k.IDPresensi, &k.Kegiatan, &k.URLFile,
		&k.TanggalKegiatan, &k.Catatan, &k.Verifikasi, &k.EditedBy,
		&k.CreatedAt, &k.UpdatedAt,
		&k.NamaPegawai, &k.NIPPegawai, &k.IDOpd, &k.NamaOpd, &k.JamMasuk,
	)
	return k, err
}

// ListByMonth implements kegiatan.KegiatanRepository. The month filter
// matches the unpadded "D/M/YYYY" storage form; date ordering happens in the
// service because legacy rows may not parse.
func (r *kegiatanRepository) ListByMonth(ctx context.Context, filter kegiatan.ListFilter) ([]kegiatan.Kegiatan, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(kegiatanColumns)
	sb.WriteString(kegiatanJoins)

	args := []interface{}{fmt.Sprintf("%%/%d/%d", filter.Bulan, filter.Tahun)}
	sb.WriteString(" WHERE k.tanggal_kegiatan LIKE $1 ")

	if filter.IDPegawai != nil {
		args = append(args, *filter.IDPegawai)
		fmt.Fprintf(&sb, " AND k.id_pegawai = $%d ", len(args))
	}
	if filter.IDOpd != nil {
		args = append(args, *filter.IDOpd)
		fmt.Fprintf(&sb, " AND pg.id_opd = $%d ", len(args))
	}
	if filter.Verifikasi != nil {
		value := 0
		if *filter.Verifikasi {
			value = 1
		}
		args = append(args, value)
		fmt.Fprintf(&sb, " AND k.verifikasi = $%d ", len(args))
	}
	sb.WriteString(" ORDER BY k.id_kegiatan ASC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list kegiatan: %w", err)
	}
	defer rows.Close()

	var out []kegiatan.Kegiatan
	for rows.Next() {
		record, err := scanKegiatan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kegiatan: %w", err)
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// FindToday implements kegiatan.KegiatanRepository.
func (r *kegiatanRepository) FindToday(ctx context.Context, idPegawai int64, start, end time.Time) (kegiatan.Kegiatan, error) {
	q := GetQuerier(ctx, r.db)

	record, err := scanKegiatan(q.QueryRow(ctx,
		"SELECT "+kegiatanColumns+kegiatanJoins+
			" WHERE k.id_pegawai = $1 AND k.created_at >= $2 AND k.created_at < $3"+
			" ORDER BY k.id_kegiatan DESC LIMIT 1",
		idPegawai, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kegiatan.Kegiatan{}, kegiatan.ErrKegiatanNotFound
		}
		return kegiatan.Kegiatan{}, fmt.Errorf("failed to find today's kegiatan: %w", err)
	}
	return record, nil
}

// GetByID implements kegiatan.KegiatanRepository.
func (r *kegiatanRepository) GetByID(ctx context.Context, idKegiatan int64) (kegiatan.Kegiatan, error) {
	q := GetQuerier(ctx, r.db)

	record, err := scanKegiatan(q.QueryRow(ctx,
		"SELECT "+kegiatanColumns+kegiatanJoins+" WHERE k.id_kegiatan = $1", idKegiatan))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kegiatan.Kegiatan{}, kegiatan.ErrKegiatanNotFound
		}
		return kegiatan.Kegiatan{}, fmt.Errorf("failed to get kegiatan: %w", err)
	}
	return record, nil
}

// Create implements kegiatan.KegiatanRepository.
func (r *kegiatanRepository) Create(ctx context.Context, k kegiatan.Kegiatan) (kegiatan.Kegiatan, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO kegiatan (id_pegawai, id_presensi, kegiatan, url_file, tanggal_kegiatan, catatan, verifikasi, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW())
		RETURNING id_kegiatan
	`, k.IDPegawai, k.IDPresensi, k.Kegiatan, k.URLFile, k.TanggalKegiatan, k.Catatan).Scan(&k.IDKegiatan)
	if err != nil {
		return kegiatan.Kegiatan{}, fmt.Errorf("failed to create kegiatan: %w", err)
	}
	return r.GetByID(ctx, k.IDKegiatan)
}

// Update implements kegiatan.KegiatanRepository.
func (r *kegiatanRepository) Update(ctx context.Context, k kegiatan.Kegiatan) error {
	q := GetQuerier(ctx, r.db)

	verifikasi := 0
	if k.Verifikasi {
		verifikasi = 1
	}
	tag, err := q.Exec(ctx, `
		UPDATE kegiatan
		SET id_presensi = $1, kegiatan = $2, url_file = $3, tanggal_kegiatan = $4,
		    catatan = $5, verifikasi = $6, edited_by = $7, updated_at = NOW()
		WHERE id_kegiatan = $8
	`, k.IDPresensi, k.Kegiatan, k.URLFile, k.TanggalKegiatan,
		k.Catatan, verifikasi, k.EditedBy, k.IDKegiatan)
	if err != nil {
		return fmt.Errorf("failed to update kegiatan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kegiatan.ErrKegiatanNotFound
	}
	return nil
}

// Delete implements kegiatan.KegiatanRepository.
func (r *kegiatanRepository) Delete(ctx context.Context, idKegiatan int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM kegiatan WHERE id_kegiatan = $1", idKegiatan)
	if err != nil {
		return fmt.Errorf("failed to delete kegiatan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kegiatan.ErrKegiatanNotFound
	}
	return nil
}
