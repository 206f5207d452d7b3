package services

import "errors"

// Client-facing error conditions. Controllers map these onto HTTP statuses;
// anything else is treated as a store failure.
var (
	ErrInvalidDirection = errors.New("direction must be 'left' or 'right'")
	ErrSelfSwipe        = errors.New("swiper and target must be different divers")
	ErrInvalidLevel     = errors.New("invalid certification level")
	ErrMatchNotFound    = errors.New("match not found")
)
