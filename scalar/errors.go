package scalar

import "errors"

var (
	errInvalidLength = errors.New("scalar: invalid encoding length")
	errNonCanonical  = errors.New("scalar: value is not in [0, l)")
)
