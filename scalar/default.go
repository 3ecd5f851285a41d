package scalar

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// DefaultCodec serializes scalars with encoding/json. It additionally
// recognizes uuid.UUID as a first-class declared type, since JSON:API
// resource identifiers are frequently UUIDs represented on the wire as
// plain strings. For a numeric declared type it also accepts a JSON
// string holding the number, the form JSON:API uses for resource ids.
type DefaultCodec struct{}

// Serialize implements Codec.
func (DefaultCodec) Serialize(value any) (json.RawMessage, error) {
	if value == nil {
		return json.RawMessage("null"), nil
	}
	if id, ok := value.(uuid.UUID); ok {
		value = id.String()
	}
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("scalar: serialize %T: %w", value, err)
	}
	return b, nil
}

// Deserialize implements Codec.
func (DefaultCodec) Deserialize(declaredType reflect.Type, raw json.RawMessage) (any, error) {
	if declaredType == uuidType {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("scalar: deserialize uuid: %w", err)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("scalar: deserialize uuid %q: %w", s, err)
		}
		return id, nil
	}
	if declaredType == nil {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("scalar: deserialize: %w", err)
		}
		return v, nil
	}
	ptr := reflect.New(declaredType)
	err := json.Unmarshal(raw, ptr.Interface())
	if err != nil {
		switch declaredType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			var s string
			if json.Unmarshal(raw, &s) == nil {
				err = json.Unmarshal([]byte(s), ptr.Interface())
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("scalar: deserialize %s: %w", declaredType, err)
	}
	return ptr.Elem().Interface(), nil
}
