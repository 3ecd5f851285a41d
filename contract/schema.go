package contract

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/invopop/jsonschema"
)

// JSONSchema derives a documentation-oriented JSON Schema describing the
// contract's plain attributes, reflecting the runtime type with
// invopop/jsonschema the way that library is commonly used to describe a
// struct's wire shape from its own field tags.
//
// It is never consulted by the serializer or deserializer — those work
// entirely off Fields/Relationships and their accessors — this exists
// purely as an introspection aid for hand-written documentation or
// client-generation tooling. Relationship-backing fields are filtered out
// so the schema matches exactly the attributes IsAttribute would emit.
func (c *Contract) JSONSchema() *jsonschema.Schema {
	if c.RuntimeType == nil {
		return nil
	}
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.ReflectFromType(c.RuntimeType)
	if s == nil || s.Type != "object" || s.Properties == nil {
		return s
	}

	filtered := orderedmap.New[string, *jsonschema.Schema]()
	for el := s.Properties.Oldest(); el != nil; el = el.Next() {
		if !c.attributeSchemaKey(el.Key) {
			continue
		}
		filtered.Set(el.Key, el.Value)
	}
	s.Properties = filtered

	required := make([]string, 0, len(s.Required))
	for _, name := range s.Required {
		if c.attributeSchemaKey(name) {
			required = append(required, name)
		}
	}
	s.Required = required

	return s
}

// attributeSchemaKey reports whether a jsonschema-reflected property name
// (derived from the runtime struct's own field tags, not necessarily the
// contract's Field.Name) corresponds to one of this contract's plain
// attributes. Matching is best-effort case-insensitive on the field name,
// since a struct built for Reflect[T] and reflected again here shares the
// same underlying Go field names.
func (c *Contract) attributeSchemaKey(propertyKey string) bool {
	for _, f := range c.Fields {
		if !c.IsAttribute(f) {
			continue
		}
		if strings.EqualFold(f.Name, propertyKey) {
			return true
		}
	}
	return false
}
