package trivia

import "errors"

var (
	// ErrNotFound marks a missing resource or an empty result set.
	ErrNotFound = errors.New("not found")
	// ErrUnprocessable marks input that cannot be turned into a domain operation.
	ErrUnprocessable = errors.New("unprocessable")
	// ErrInvalidPage marks a page parameter that is not a positive integer.
	ErrInvalidPage = errors.New("invalid page")
)
