package record

import "errors"

var (
	ErrUnknownFormat   = errors.New("unknown format")
	ErrMalformedRecord = errors.New("malformed record")
	ErrBadFieldNames   = errors.New("bad field names")
)
