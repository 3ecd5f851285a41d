package contract

import "testing"

func TestRelationshipKindString(t *testing.T) {
	if got := BelongsTo.String(); got != "belongsTo" {
		t.Errorf("BelongsTo.String() = %q", got)
	}
	if got := HasMany.String(); got != "hasMany" {
		t.Errorf("HasMany.String() = %q", got)
	}
	if got := RelationshipKind(99).String(); got != "unknown" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestEffectiveFieldBelongsTo(t *testing.T) {
	field := &Field{Name: "author"}
	viaField := &Field{Name: "authorId"}

	both := &Relationship{Kind: BelongsTo, Field: field, ViaField: viaField}
	if got := both.EffectiveField(); got != field {
		t.Error("expected Field to win when both are set")
	}

	viaOnly := &Relationship{Kind: BelongsTo, ViaField: viaField}
	if got := viaOnly.EffectiveField(); got != viaField {
		t.Error("expected ViaField to be used when Field is nil")
	}

	neither := &Relationship{Kind: BelongsTo}
	if got := neither.EffectiveField(); got != nil {
		t.Error("expected nil when neither accessor is set")
	}
}

func TestEffectiveFieldHasMany(t *testing.T) {
	field := &Field{Name: "comments"}
	viaField := &Field{Name: "commentIds"}

	r := &Relationship{Kind: HasMany, Field: field, ViaField: viaField}
	if got := r.EffectiveField(); got != field {
		t.Error("expected HasMany to always use Field")
	}

	noField := &Relationship{Kind: HasMany, ViaField: viaField}
	if got := noField.EffectiveField(); got != nil {
		t.Error("expected HasMany with no Field to report nil, never falling back to ViaField")
	}
}

func TestShouldDeserialize(t *testing.T) {
	writable := &Field{Options: OptCanDeserialize}
	readOnly := &Field{Options: OptCanSerialize}

	r := &Relationship{Field: readOnly, ViaField: writable}
	if !r.ShouldDeserialize() {
		t.Error("expected true when ViaField alone is writable")
	}

	r2 := &Relationship{Field: readOnly, ViaField: readOnly}
	if r2.ShouldDeserialize() {
		t.Error("expected false when neither accessor is writable")
	}

	r3 := &Relationship{}
	if r3.ShouldDeserialize() {
		t.Error("expected false when both accessors are nil")
	}
}
