package core

import "errors"

var (
	ErrNotFound            = errors.New("prompt not found")
	ErrStorageIO           = errors.New("storage i/o failure")
	ErrInvalidImport       = errors.New("invalid import file format")
	ErrProviderUnsupported = errors.New("unsupported ai provider")
	ErrNotImplemented      = errors.New("not implemented")
)
