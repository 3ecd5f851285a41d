package scalar

import (
	"encoding/json"
	"reflect"
)

// Codec serializes and deserializes leaf field values. It is the only
// seam between the hypermedia core and whatever scalar JSON
// representation a caller's domain types require.
type Codec interface {
	// Serialize converts a Go value into its JSON representation.
	Serialize(value any) (json.RawMessage, error)
	// Deserialize converts a JSON value into a Go value of declaredType.
	// declaredType may be nil, in which case the codec returns whatever
	// natural Go type encoding/json would produce for the input.
	Deserialize(declaredType reflect.Type, raw json.RawMessage) (any, error)
}
