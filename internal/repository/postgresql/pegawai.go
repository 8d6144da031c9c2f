package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
)

type pegawaiRepository struct {
	db *database.DB
}

func NewPegawaiRepository(db *database.DB) pegawai.PegawaiRepository {
	return &pegawaiRepository{db: db}
}

// List implements pegawai.PegawaiRepository.
func (r *pegawaiRepository) List(ctx context.Context, filter pegawai.Filter) ([]pegawai.Pegawai, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT pg.id_pegawai, pg.nip_pegawai, pg.nama_pegawai,
			   pg.id_opd, pg.id_jabatan, pg.id_pangkat, o.nama_opd
		FROM pegawai pg
		LEFT JOIN opd o ON o.id_opd = pg.id_opd
		WHERE 1=1
	`)

	var args []interface{}
	if filter.IDOpd != nil {
		args = append(args, *filter.IDOpd)
		fmt.Fprintf(&sb, " AND pg.id_opd = $%d ", len(args))
	}
	if filter.IDJabatan != nil {
		args = append(args, *filter.IDJabatan)
		fmt.Fprintf(&sb, " AND pg.id_jabatan = $%d ", len(args))
	}
	if filter.IDPangkat != nil {
		args = append(args, *filter.IDPangkat)
		fmt.Fprintf(&sb, " AND pg.id_pangkat = $%d ", len(args))
	}
	sb.WriteString(" ORDER BY o.nama_opd NULLS LAST, pg.nama_pegawai ")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pegawai: %w", err)
	}
	defer rows.Close()

	var out []pegawai.Pegawai
	for rows.Next() {
		var p pegawai.Pegawai
		if err := rows.Scan(
			&p.IDPegawai, &p.NIPPegawai, &p.NamaPegawai,
			&p.IDOpd, &p.IDJabatan, &p.IDPangkat, &p.NamaOpd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pegawai: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID implements pegawai.PegawaiRepository.
func (r *pegawaiRepository) GetByID(ctx context.Context, idPegawai int64) (pegawai.Pegawai, error) {
	q := GetQuerier(ctx, r.db)

	var p pegawai.Pegawai
	err := q.QueryRow(ctx, `
		SELECT pg.id_pegawai, pg.nip_pegawai, pg.nama_pegawai,
			   pg.id_opd, pg.id_jabatan, pg.id_pangkat, o.nama_opd
		FROM pegawai pg
		LEFT JOIN opd o ON o.id_opd = pg.id_opd
		WHERE pg.id_pegawai = $1
	`, idPegawai).Scan(
		&p.IDPegawai, &p.NIPPegawai, &p.NamaPegawai,
		&p.IDOpd, &p.IDJabatan, &p.IDPangkat, &p.NamaOpd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pegawai.Pegawai{}, pegawai.ErrPegawaiNotFound
		}
		return pegawai.Pegawai{}, fmt.Errorf("failed to get pegawai: %w", err)
	}
	return p, nil
}

// GetCredentialByNIP implements pegawai.PegawaiRepository.
func (r *pegawaiRepository) GetCredentialByNIP(ctx context.Context, nip string) (pegawai.Credential, error) {
	q := GetQuerier(ctx, r.db)

	var c pegawai.Credential
	err := q.QueryRow(ctx, `
		SELECT id_pegawai, nip_pegawai, nama_pegawai, password
		FROM pegawai
		WHERE nip_pegawai = $1
	`, nip).Scan(&c.IDPegawai, &c.NIPPegawai, &c.NamaPegawai, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pegawai.Credential{}, pegawai.ErrPegawaiNotFound
		}
		return pegawai.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}
	return c, nil
}
