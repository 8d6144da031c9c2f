package pangkat

import "errors"

var (
	ErrPangkatNotFound = errors.New("pangkat not found")
)
