package list

import "errors"

var (
	// ErrIndexOutOfBounds is returned by At, InsertAt and RemoveAt when the
	// index falls outside the operation's valid range. The list is never
	// modified before the range check.
	ErrIndexOutOfBounds = errors.New("list: index out of range")

	// ErrEmptyList is returned by Pop, Head and Tail on a zero-length list.
	ErrEmptyList = errors.New("list: empty list")
)

// NotFound is the index Find returns when no node matches. Absence is an
// expected outcome of a search, so it is a sentinel, not an error.
const NotFound = -1
