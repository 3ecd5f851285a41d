package hypermedia

import "errors"

// Sentinel error kinds, checked with errors.Is against the error returned
// from a Serializer or Deserializer entry point. All are fatal to the
// operation in progress: no partial document or partial entity is ever
// returned alongside one of these.
var (
	// ErrUnknownType is returned when the contract resolver has no
	// Contract for a runtime type (serializing) or a wire type name
	// (deserializing).
	ErrUnknownType = errors.New("hypermedia: unknown resource type")

	// ErrShapeMismatch is returned when a document's "data" member has
	// the wrong shape for the entry point invoked (object vs array), or
	// when a relationship's "data" member has the wrong shape for its
	// declared kind.
	ErrShapeMismatch = errors.New("hypermedia: shape mismatch")

	// ErrNonIterableHasMany is returned when a HasMany relationship's
	// runtime field value does not support iteration.
	ErrNonIterableHasMany = errors.New("hypermedia: has-many field value is not iterable")

	// ErrUnconstructibleCollection is returned when a HasMany
	// relationship's declared field type cannot be materialized as a
	// collection.
	ErrUnconstructibleCollection = errors.New("hypermedia: cannot materialize collection for has-many field")

	// ErrInvalidArgument is returned for caller misuse, such as passing a
	// nil entity to a singular serialize entry point.
	ErrInvalidArgument = errors.New("hypermedia: invalid argument")
)
