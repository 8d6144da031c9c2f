package pegawai

import "context"

type PegawaiRepository interface {
	// List returns employees matching the filter, joined with OPD name,
	// ordered by OPD then name.
	List(ctx context.Context, filter Filter) ([]Pegawai, error)

	// GetByID returns a single employee.
	GetByID(ctx context.Context, idPegawai int64) (Pegawai, error)

	// GetCredentialByNIP returns login credentials for an employee number.
	GetCredentialByNIP(ctx context.Context, nip string) (Credential, error)
}
