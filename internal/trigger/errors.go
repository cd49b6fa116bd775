package trigger

import "errors"

var (
	ErrInvalidDirectInput = errors.New("invalid direct trigger input")
)
