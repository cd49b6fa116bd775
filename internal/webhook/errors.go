package webhook

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid webhook token")
	ErrIPNotAllowed     = errors.New("source IP not allowed")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrUnsupportedEvent = errors.New("unsupported event kind")
)
