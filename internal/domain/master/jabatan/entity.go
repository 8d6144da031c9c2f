package jabatan

import "time"

// Jabatan is a job position inside an OPD. Eselon is the echelon tier; only
// tiers 2 and 3 appear in the leadership reports.
type Jabatan struct {
	IDJabatan   int64
	IDOpd       int64
	NamaJabatan string
	Tupoksi     *string
	Eselon      *int
	EditedBy    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	NamaOpd *string
}
