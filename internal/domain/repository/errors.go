package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers non-2xx upstream statuses and short-circuited calls.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrCircuitOpen is returned without contacting the upstream.
	ErrCircuitOpen = fmt.Errorf("%w: circuit open", ErrUnavailable)
	// ErrEmptyResponse means the upstream answered 2xx with no usable body.
	ErrEmptyResponse = errors.New("upstream returned empty response")
)
