package domain

import "errors"

var (
	ErrDirectoryNotFound = errors.New("gallery directory not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrMalformedInput    = errors.New("malformed caption store")
	ErrIOFailure         = errors.New("caption store write failed")
	ErrSpawn             = errors.New("viewer launch failed")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrStoreNotFound     = errors.New("caption store not found")
)
