package contract

import "reflect"

// Builder is a small amount of fluent sugar over a bare Contract literal,
// for callers who would rather assemble a Contract by hand than derive
// one with Reflect. A Builder still produces an ordinary Contract, the
// only thing the codec itself ever consumes.
type Builder struct {
	c *Contract
}

// NewBuilder starts building a Contract for a resource named name, backed
// by runtimeType, with newInstance producing an empty domain entity.
func NewBuilder(name string, runtimeType reflect.Type, newInstance func() any) *Builder {
	return &Builder{c: &Contract{
		Name:        name,
		RuntimeType: runtimeType,
		NewInstance: newInstance,
	}}
}

// Field appends f to the contract's ordered field list.
func (b *Builder) Field(f *Field) *Builder {
	b.c.Fields = append(b.c.Fields, f)
	return b
}

// Relationship appends r to the contract's ordered relationship list.
func (b *Builder) Relationship(r *Relationship) *Builder {
	b.c.Relationships = append(b.c.Relationships, r)
	return b
}

// Build returns the assembled Contract. The Builder should not be reused
// afterward.
func (b *Builder) Build() *Contract {
	return b.c
}
