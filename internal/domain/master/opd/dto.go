package opd

// Opd is a government organizational unit, the grouping level for every
// attendance report.
type Opd struct {
	IDOpd   int64  `json:"id_opd"`
	NamaOpd string `json:"nama_opd"`
}
