package presensi

import "strings"

// Presensi is one check-in record. JamMasuk is an epoch-millisecond
// timestamp; the calendar day it belongs to is always derived in the fixed
// civil timezone, never the server's local zone.
//
// KetMasuk is the entry category tag. A prefix of "Biasa" marks a normal
// entry, "Khusus" a special one; anything else never counts as hadir.
type Presensi struct {
	IDPresensi int64
	IDPegawai  int64
	JamMasuk   int64
	KetMasuk   string
	Bukti      *string

	// DTO
	NamaPegawai string
	NIPPegawai  string
	IDOpd       *int64
	NamaOpd     *string
}

// HasRecognizedCategory reports whether the entry category counts toward
// attendance.
func (p Presensi) HasRecognizedCategory() bool {
	return p.IsBiasa() || p.IsKhusus()
}

func (p Presensi) IsBiasa() bool {
	return strings.HasPrefix(p.KetMasuk, "Biasa")
}

func (p Presensi) IsKhusus() bool {
	return strings.HasPrefix(p.KetMasuk, "Khusus")
}
