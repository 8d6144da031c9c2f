package pegawai

import "errors"

var (
	ErrPegawaiNotFound = errors.New("pegawai not found")
)
