package contract

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Reflect builds a Contract for struct type T from `jsonapi` struct tags,
// the way the wider ecosystem derives a wire schema from Go struct tags
// via reflection (see invopop/jsonschema, used elsewhere in this module
// for documentation-oriented schema introspection) rather than requiring
// hand-written accessor closures for the common case.
//
// Recognized tag forms, comma-separated after the first token:
//
//	`jsonapi:"id"`                    the resource id
//	`jsonapi:"attr"`                  a plain read/write attribute
//	`jsonapi:"attr,noserialize"`      write-only attribute
//	`jsonapi:"attr,nodeserialize"`    read-only attribute
//	`jsonapi:"belongsTo"`             a to-one relationship
//	`jsonapi:"belongsTo,via=OwnerID"` ...with a sibling foreign-key field
//	`jsonapi:"hasMany"`               a to-many relationship
//
// Unexported fields and fields with no `jsonapi` tag are ignored. The
// relationship's peer runtime type is taken from the field's own Go type
// (dereferencing one level of pointer or slice); a Resolver still needs a
// Contract registered for that peer type to resolve linkages at runtime.
//
// This does not make the runtime codec path reflective: Reflect runs once,
// at contract-build time, and produces the same closures a hand-written
// Contract would use.
func Reflect[T any](name string) (*Contract, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil {
		return nil, fmt.Errorf("contract: reflect %s: type has no static shape", name)
	}
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("contract: reflect %s: %s is not a struct", name, rt)
	}

	c := &Contract{
		Name:        name,
		RuntimeType: reflect.PointerTo(rt),
		NewInstance: func() any { return reflect.New(rt).Interface() },
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("jsonapi")
		if !ok || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		kind := parts[0]
		args := parts[1:]

		switch kind {
		case "id":
			c.Fields = append(c.Fields, reflectedField(sf, OptID|OptDefault))
		case "attr":
			opts := OptDefault
			for _, a := range args {
				switch a {
				case "noserialize":
					opts &^= OptCanSerialize
				case "nodeserialize":
					opts &^= OptCanDeserialize
				}
			}
			c.Fields = append(c.Fields, reflectedField(sf, opts))
		case "belongsTo":
			elemType := sf.Type
			if elemType.Kind() == reflect.Ptr {
				elemType = elemType.Elem()
			}
			rel := &Relationship{
				Name:      lowerFirst(sf.Name),
				Kind:      BelongsTo,
				RelatedTo: reflect.PointerTo(elemType),
				Field:     reflectedField(sf, OptDefault|OptRelationship),
			}
			for _, a := range args {
				if via, found := strings.CutPrefix(a, "via="); found {
					if vf, ok := rt.FieldByName(via); ok {
						rel.ViaField = reflectedField(vf, OptDefault|OptRelationship)
					}
				}
			}
			c.Relationships = append(c.Relationships, rel)
		case "hasMany":
			elemType := sf.Type
			if elemType.Kind() == reflect.Slice {
				elemType = elemType.Elem()
			}
			if elemType.Kind() == reflect.Ptr {
				elemType = elemType.Elem()
			}
			rel := &Relationship{
				Name:      lowerFirst(sf.Name),
				Kind:      HasMany,
				RelatedTo: reflect.PointerTo(elemType),
				Field:     reflectedField(sf, OptDefault|OptRelationship),
			}
			c.Relationships = append(c.Relationships, rel)
		}
	}

	return c, nil
}

func reflectedField(sf reflect.StructField, opts FieldOptions) *Field {
	name := lowerFirst(sf.Name)
	index := sf.Index
	return &Field{
		Name:    name,
		Type:    sf.Type,
		Options: opts,
		Accessor: Accessor{
			Get: func(instance any) (any, error) {
				v := reflect.ValueOf(instance)
				if v.Kind() != reflect.Ptr || v.IsNil() {
					return nil, fmt.Errorf("contract: field %s: accessor expects a non-nil pointer, got %T", name, instance)
				}
				return v.Elem().FieldByIndex(index).Interface(), nil
			},
			Set: func(instance any, value any) error {
				v := reflect.ValueOf(instance)
				if v.Kind() != reflect.Ptr || v.IsNil() {
					return fmt.Errorf("contract: field %s: accessor expects a non-nil pointer, got %T", name, instance)
				}
				fv := v.Elem().FieldByIndex(index)
				if value == nil {
					fv.Set(reflect.Zero(fv.Type()))
					return nil
				}
				rv := reflect.ValueOf(value)
				switch {
				case rv.Type().AssignableTo(fv.Type()):
					fv.Set(rv)
				case rv.Type().ConvertibleTo(fv.Type()):
					fv.Set(rv.Convert(fv.Type()))
				default:
					return fmt.Errorf("contract: field %s: cannot assign %s to %s", name, rv.Type(), fv.Type())
				}
				return nil
			},
		},
	}
}

// lowerFirst lowers the leading character of s, or the whole leading run
// of upper-case letters when s starts with an initialism: "Title" becomes
// "title", "ID" becomes "id", "URLPath" becomes "urlPath".
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	for i := 0; i < len(r) && unicode.IsUpper(r[i]); i++ {
		if i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) {
			break
		}
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
