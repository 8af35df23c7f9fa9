package domain

import "errors"

var (
	ErrNotFound           = errors.New("pokemon not found")
	ErrNetwork            = errors.New("network failure")
	ErrPartialAggregation = errors.New("page detail fetch failed")
	ErrUnknownType        = errors.New("unknown pokemon type")
	ErrInvalidWindow      = errors.New("invalid page window")
)
