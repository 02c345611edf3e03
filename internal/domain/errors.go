package domain

import "errors"

// Domain errors.
var (
	ErrInvalidSample  = errors.New("time sample out of range")
	ErrUnknownMode    = errors.New("unknown display mode")
	ErrBadUTCOffset   = errors.New("utc offset out of range")
	ErrBadInterval    = errors.New("refresh interval must be positive")
	ErrBadSnapshotDim = errors.New("snapshot size must be positive")
)
