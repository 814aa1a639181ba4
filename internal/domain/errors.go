package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGeneratorUnavailable is returned when the generative backend cannot
	// be reached (connection refused, timeout, or open circuit breaker)
	ErrGeneratorUnavailable = errors.New("text generator unavailable")

	// ErrGeneratorBadResponse is returned when the generative backend answers
	// with a non-success status or an unparseable body
	ErrGeneratorBadResponse = errors.New("text generator returned bad response")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
