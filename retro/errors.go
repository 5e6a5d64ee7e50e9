package retro

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned by New for a Config that fails Validate.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrResourceExhausted is returned by Solve when the state space does not fit the configured
	// limits. No partial Solution is ever returned alongside it.
	ErrResourceExhausted = errors.New("resource exhausted")
)
