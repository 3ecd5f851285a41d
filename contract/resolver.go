package contract

import "reflect"

// Resolver maps between the nominal wire type name used in a JSON:API
// document (e.g. "posts") and the runtime type handle of the domain
// entity it describes. It is read-only after construction and safe to
// share across concurrent Serializer/Deserializer instances.
type Resolver struct {
	byType map[reflect.Type]*Contract
	byName map[string]*Contract
}

// NewResolver builds a Resolver from a fixed set of contracts. A
// duplicate RuntimeType or Name is a programmer error; the later contract
// wins, mirroring the "last write wins" convention used elsewhere in this
// module for static registration.
func NewResolver(contracts ...*Contract) *Resolver {
	r := &Resolver{
		byType: make(map[reflect.Type]*Contract, len(contracts)),
		byName: make(map[string]*Contract, len(contracts)),
	}
	for _, c := range contracts {
		if c == nil {
			continue
		}
		if c.RuntimeType != nil {
			r.byType[c.RuntimeType] = c
		}
		r.byName[c.Name] = c
	}
	return r
}

// TryResolveType looks up the Contract registered for a runtime type.
func (r *Resolver) TryResolveType(t reflect.Type) (*Contract, bool) {
	c, ok := r.byType[t]
	return c, ok
}

// TryResolveName looks up the Contract registered for a wire type name.
func (r *Resolver) TryResolveName(name string) (*Contract, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Contracts returns every registered contract, in no particular order.
func (r *Resolver) Contracts() []*Contract {
	out := make([]*Contract, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	return out
}
