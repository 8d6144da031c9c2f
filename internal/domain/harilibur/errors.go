package harilibur

import "errors"

var (
	ErrHariLiburNotFound = errors.New("hari libur record not found")
)
