package entity

import "errors"

var (
	// ErrInvalidArgument reports a bad key, a region that is not part of the
	// tree, or an operation that does not apply to its target.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFormat reports a malformed or incompatible layout document.
	ErrFormat = errors.New("format error")
	// ErrState reports an operation attempted without a required collaborator.
	ErrState = errors.New("invalid state")
)
