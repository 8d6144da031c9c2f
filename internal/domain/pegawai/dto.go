package pegawai

type PegawaiResponse struct {
	IDPegawai   int64   `json:"id_pegawai"`
	NIPPegawai  string  `json:"nip_pegawai"`
	NamaPegawai string  `json:"nama_pegawai"`
	IDOpd       *int64  `json:"id_opd"`
	NamaOpd     *string `json:"nama_opd"`
}
