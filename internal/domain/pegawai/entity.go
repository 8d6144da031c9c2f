package pegawai

// Pegawai is a civil servant reference record, joined with the OPD name for
// reporting.
type Pegawai struct {
	IDPegawai   int64
	NIPPegawai  string
	NamaPegawai string
	IDOpd       *int64
	IDJabatan   *int64
	IDPangkat   *int64

	// DTO
	NamaOpd *string
}

// Credential carries the fields needed for NIP/password login.
type Credential struct {
	IDPegawai    int64
	NIPPegawai   string
	NamaPegawai  string
	PasswordHash string
}

// Filter narrows the employee set before aggregation. Nil fields are
// ignored; filtered-out employees contribute nothing, including to report
// denominators.
type Filter struct {
	IDOpd     *int64
	IDJabatan *int64
	IDPangkat *int64
}
