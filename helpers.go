package hypermedia

import (
	"fmt"
	"reflect"
)

// isNilEntity reports whether entity is either the untyped nil or a
// typed nil pointer, interface, slice, map, channel or func, the shapes a
// Contract's runtime type accessor might hand back for "no value here".
func isNilEntity(entity any) bool {
	if entity == nil {
		return true
	}
	v := reflect.ValueOf(entity)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// iterateHasMany walks a HasMany field's runtime value and returns its
// elements as a flat slice, or ok=false if value is neither nil nor a
// slice or array (ErrNonIterableHasMany at the call site).
func iterateHasMany(value any) (elems []any, ok bool) {
	if value == nil {
		return nil, true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// buildCollection materializes a HasMany field's runtime value from
// decoded elements, given the field's declared static type. Only plain
// Go slices are supported as target shapes; a declared type of any other
// kind, an interface type included, is ErrUnconstructibleCollection.
func buildCollection(declaredType reflect.Type, elems []any) (any, error) {
	if declaredType == nil || declaredType.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %v", ErrUnconstructibleCollection, declaredType)
	}
	elemType := declaredType.Elem()
	out := reflect.MakeSlice(declaredType, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			out = reflect.Append(out, reflect.Zero(elemType))
			continue
		}
		rv := reflect.ValueOf(e)
		switch {
		case rv.Type().AssignableTo(elemType):
			out = reflect.Append(out, rv)
		case rv.Type().ConvertibleTo(elemType):
			out = reflect.Append(out, rv.Convert(elemType))
		default:
			return nil, fmt.Errorf("%w: cannot assign %s into %s", ErrUnconstructibleCollection, rv.Type(), elemType)
		}
	}
	return out.Interface(), nil
}
