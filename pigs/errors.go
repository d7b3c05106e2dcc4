package pigs

import "errors"

// ErrInvalidArgument indicates a negative input, a non-positive minutesToDie,
// or a value that could not be converted to int.
//
// It can be wrapped together with the underlying conversion error.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInfeasible indicates that not even one round fits in the test window.
//
// It is returned alongside [Impossible].
var ErrInfeasible = errors.New("no test round fits in the window")

// ErrBucketRange indicates a bucket index outside [0, buckets).
var ErrBucketRange = errors.New("bucket out of range")

// ErrBadOutcome indicates an outcome that no bucket of the scheme can
// produce.
var ErrBadOutcome = errors.New("outcome does not match scheme")
