package tree

import "errors"

var (
	ErrNoParent    = errors.New("node has no parent")
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrBadRecord   = errors.New("cannot destructure record")
)
