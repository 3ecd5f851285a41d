package contract

import "reflect"

// FieldOptions is the bit set of capabilities and roles a Field carries.
type FieldOptions uint8

const (
	OptNone FieldOptions = 0
	// OptID marks the field holding the resource's primary key. At most
	// one field per Contract may set this.
	OptID FieldOptions = 1 << 0
	// OptCanSerialize permits the field's Accessor.Get to be called when
	// producing a document.
	OptCanSerialize FieldOptions = 1 << 1
	// OptCanDeserialize permits the field's Accessor.Set to be called
	// when materializing an entity from a document.
	OptCanDeserialize FieldOptions = 1 << 2
	// OptRelationship marks a field that backs one side of a
	// Relationship rather than a plain attribute. It is informational —
	// the actual exclusion from attribute output is driven by
	// Contract.IsAttribute matching field names against relationships,
	// not by this bit.
	OptRelationship FieldOptions = 1 << 3
	// OptDefault is CanSerialize | CanDeserialize, the common case for a
	// plain readable/writable attribute.
	OptDefault = OptCanSerialize | OptCanDeserialize
)

// Has reports whether all bits of flag are set in o.
func (o FieldOptions) Has(flag FieldOptions) bool {
	return o&flag == flag
}

// Accessor is the capability pair used to read and write a named field on
// an opaque domain instance. The core never calls Set unless the owning
// Field has OptCanDeserialize. It never calls Get on an attribute or
// relationship field unless it has OptCanSerialize; the id field is read
// regardless of its options whenever a resource's id, identity or
// linkage is needed.
type Accessor struct {
	Get func(instance any) (any, error)
	Set func(instance any, value any) error
}

// Field describes one attribute-shaped member of a Contract: either a
// plain attribute, a resource's id, or the accessor backing one side of a
// Relationship.
type Field struct {
	// Name is the in-memory (camelCase) field identifier.
	Name string
	// Type is the field's declared static type, used by a scalar.Codec
	// to know what Go value to reconstruct on deserialize.
	Type     reflect.Type
	Options  FieldOptions
	Accessor Accessor
}

// CanSerialize reports whether f is nil-safe to read for output.
func (f *Field) CanSerialize() bool {
	return f != nil && f.Options.Has(OptCanSerialize)
}

// CanDeserialize reports whether f is nil-safe to write from input.
func (f *Field) CanDeserialize() bool {
	return f != nil && f.Options.Has(OptCanDeserialize)
}

// IsID reports whether f is the contract's primary-key field.
func (f *Field) IsID() bool {
	return f != nil && f.Options.Has(OptID)
}

// Contract is the runtime description of one resource type.
type Contract struct {
	// Name is the wire tag, e.g. "posts".
	Name string
	// RuntimeType is the handle for the domain type this contract backs,
	// used by a Resolver to dispatch on a concrete entity's type.
	RuntimeType reflect.Type
	// NewInstance produces an empty instance, used by the deserializer
	// before any field is populated (so cyclic references can resolve
	// against a not-yet-fully-populated instance).
	NewInstance func() any

	Fields        []*Field
	Relationships []*Relationship
}

// IDField returns the contract's id field, or nil for a value type with
// no identity: at most one field may set OptID.
func (c *Contract) IDField() *Field {
	for _, f := range c.Fields {
		if f.IsID() {
			return f
		}
	}
	return nil
}

// IsAttribute reports whether f should be emitted as a plain JSON:API
// attribute: it must be readable, must not be the id field, and must not
// duplicate data any relationship already exposes through its Field or
// ViaField accessor.
func (c *Contract) IsAttribute(f *Field) bool {
	if f == nil || !f.Options.Has(OptCanSerialize) || f.Options.Has(OptID) {
		return false
	}
	for _, r := range c.Relationships {
		if r.Field != nil && r.Field.Name == f.Name {
			return false
		}
		if r.ViaField != nil && r.ViaField.Name == f.Name {
			return false
		}
	}
	return true
}

// ShouldDeserializeField reports whether f should be considered as a
// candidate target for an inbound "attributes" member.
func (c *Contract) ShouldDeserializeField(f *Field) bool {
	if f == nil || !f.Options.Has(OptCanDeserialize) || f.Options.Has(OptID) {
		return false
	}
	for _, r := range c.Relationships {
		if r.Field != nil && r.Field.Name == f.Name {
			return false
		}
		if r.ViaField != nil && r.ViaField.Name == f.Name {
			return false
		}
	}
	return true
}
