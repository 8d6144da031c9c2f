package kegiatan

import "errors"

var (
	ErrKegiatanNotFound = errors.New("kegiatan record not found")
)
