package fetcher

import "errors"

var (
	ErrUnknownResource = errors.New("unknown resource type")
	ErrMissingResource = errors.New("trigger result has no resource id")
	ErrUnknownEncoding = errors.New("unknown file encoding")
)
