package izin

// Izin is a leave/permission record. TanggalIzin and TanggalSelesai are kept
// as the raw "D/M/YYYY" strings the legacy data uses; consumers parse them
// defensively and skip rows that do not parse. Only verified rows count
// toward attendance classification.
type Izin struct {
	IDIzin         int64
	IDPegawai      int64
	JenisIzin      string
	Keterangan     *string
	TanggalIzin    string
	TanggalSelesai string
	Verifikasi     bool
	Bukti          *string

	// DTO
	NamaPegawai string
	NIPPegawai  string
	IDOpd       *int64
	NamaOpd     *string
}
