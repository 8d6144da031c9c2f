package jabatan

import "errors"

var (
	ErrJabatanNotFound = errors.New("jabatan not found")
)
