package rekap

import (
	"context"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
)

// RekapRepository is the data-fetch contract the reporting engine consumes.
// Every call returns a fully-materialized snapshot; the engine itself never
// touches the database.
type RekapRepository interface {
	// FetchHariLibur returns holiday periods intersecting the ISO date range.
	FetchHariLibur(ctx context.Context, startDate, endDate string) ([]harilibur.HariLibur, error)

	// FetchPresensi returns attendance rows whose jam_masuk falls inside the
	// epoch-millis window.
	FetchPresensi(ctx context.Context, startEpoch, endEpoch int64) ([]presensi.Presensi, error)

	// FetchVerifiedIzin returns every verified leave row.
	FetchVerifiedIzin(ctx context.Context) ([]izin.Izin, error)

	// FetchPegawai returns the employee set for the filter, joined with OPD
	// name.
	FetchPegawai(ctx context.Context, filter pegawai.Filter) ([]pegawai.Pegawai, error)
}
