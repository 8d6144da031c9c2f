package opd

import "errors"

var (
	ErrOpdNotFound = errors.New("opd not found")
)
