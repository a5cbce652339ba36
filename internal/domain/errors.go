package domain

import "errors"

var (
	// ErrInvalidRequest signals a request that could not be decoded.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEngine signals a storage engine failure (network, throttling, authorization).
	ErrEngine = errors.New("engine error")
	// ErrConfig signals missing or invalid startup configuration.
	ErrConfig = errors.New("invalid configuration")
)
