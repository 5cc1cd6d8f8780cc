package core

import "errors"

var (
	// ErrInvalidConfiguration marks a non-retryable usage error, such as an unknown object set
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrCapabilityUnavailable marks a renderer that cannot provide an optional capability
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	// ErrUnknownStrategy is returned for sampling strategy names with no registered sampler
	ErrUnknownStrategy = errors.New("unknown sampling strategy")

	// ErrUnknownAsset is returned when a catalog has no template for an asset id
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrInvalidProperty is returned when a physical property is out of range
	ErrInvalidProperty = errors.New("invalid physical property")
)
