package presensi

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("pegawai has already checked in today")
)
