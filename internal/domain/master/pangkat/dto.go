package pangkat

// Pangkat is a civil-service rank with its golongan grade code.
type Pangkat struct {
	IDPangkat   int64  `json:"id_pangkat"`
	NamaPangkat string `json:"nama_pangkat"`
	Golongan    string `json:"golongan"`
}
