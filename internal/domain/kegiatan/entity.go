package kegiatan

import "time"

// Kegiatan is a daily activity report. TanggalKegiatan is kept as the raw
// "D/M/YYYY" string the legacy data uses, like the izin date columns. A row
// may link back to the check-in it was reported under via IDPresensi.
type Kegiatan struct {
	IDKegiatan      int64
	IDPegawai       int64
	IDPresensi      *int64
	Kegiatan        string
	URLFile         *string
	TanggalKegiatan string
	Catatan         *string
	Verifikasi      bool
	EditedBy        *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time

	// DTO
	NamaPegawai string
	NIPPegawai  string
	IDOpd       *int64
	NamaOpd     *string
	JamMasuk    *int64
}
