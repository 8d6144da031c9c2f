package izin

import "errors"

var (
	ErrIzinNotFound        = errors.New("izin record not found")
	ErrIzinAlreadyVerified = errors.New("izin has already been verified")
)
