package hypermedia

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kinkade/hypermedia/contract"
	"github.com/kinkade/hypermedia/internal/codeclog"
	"github.com/kinkade/hypermedia/internal/identity"
	"github.com/kinkade/hypermedia/internal/naming"
	"github.com/kinkade/hypermedia/linktemplate"
)

// Serializer translates domain entities into JSON:API documents.
type Serializer struct {
	cfg *config
}

// NewSerializer builds a Serializer backed by resolver. resolver must
// carry a Contract for every domain type the serializer will ever be
// asked to serialize, including relationship targets discovered while
// walking a compound document.
func NewSerializer(resolver *contract.Resolver, opts ...Option) *Serializer {
	return &Serializer{cfg: newConfig(resolver, opts)}
}

// SerializeEntity produces a Document whose "data" member is a single
// resource object for entity, with every reachable related resource
// collected into "included".
func (s *Serializer) SerializeEntity(entity any) (*Document, error) {
	if isNilEntity(entity) {
		return nil, fmt.Errorf("%w: entity is nil", ErrInvalidArgument)
	}

	acc := newIncludedAccumulator()
	primary := identity.NewSet()
	if key, _, ok := s.identityOf(entity); ok {
		primary.Add(key)
	}

	raw, err := s.serializeResource(entity, acc, primary)
	if err != nil {
		return nil, err
	}

	doc := &Document{JSONAPI: s.cfg.jsonAPI, Data: raw}
	if included := acc.collect(); len(included) > 0 {
		doc.Included = included
	}
	ctx := codeclog.WithOperation(context.Background(), codeclog.OpSerialize)
	s.cfg.logger().DebugContext(ctx, "serialized entity", "type", reflect.TypeOf(entity), "included", len(doc.Included))
	return doc, nil
}

// SerializeMany produces a Document whose "data" member is an array of
// resource objects, one per element of entities, with the union of their
// reachable related resources collected into "included".
func (s *Serializer) SerializeMany(entities []any) (*Document, error) {
	acc := newIncludedAccumulator()
	primary := identity.NewSet()
	for _, e := range entities {
		if key, _, ok := s.identityOf(e); ok {
			primary.Add(key)
		}
	}

	rawList := make([]json.RawMessage, 0, len(entities))
	for _, e := range entities {
		if isNilEntity(e) {
			return nil, fmt.Errorf("%w: entity is nil", ErrInvalidArgument)
		}
		raw, err := s.serializeResource(e, acc, primary)
		if err != nil {
			return nil, err
		}
		rawList = append(rawList, raw)
	}

	arr, err := json.Marshal(rawList)
	if err != nil {
		return nil, fmt.Errorf("hypermedia: marshal data array: %w", err)
	}

	doc := &Document{Data: arr}
	if included := acc.collect(); len(included) > 0 {
		doc.Included = included
	}
	ctx := codeclog.WithOperation(context.Background(), codeclog.OpSerialize)
	s.cfg.logger().DebugContext(ctx, "serialized collection", "count", len(entities), "included", len(doc.Included))
	return doc, nil
}

// identityOf returns the (type, id) identity of entity along with its
// resolved Contract name, or ok=false if entity is nil, has no
// registered contract, or its contract declares no id field.
func (s *Serializer) identityOf(entity any) (key identity.Key, contractName string, ok bool) {
	if isNilEntity(entity) {
		return identity.Key{}, "", false
	}
	c, found := s.cfg.resolver.TryResolveType(reflect.TypeOf(entity))
	if !found {
		return identity.Key{}, "", false
	}
	idField := c.IDField()
	if idField == nil {
		return identity.Key{}, "", false
	}
	idVal, err := idField.Accessor.Get(entity)
	if err != nil {
		return identity.Key{}, "", false
	}
	idRaw, err := s.cfg.codec.Serialize(idVal)
	if err != nil {
		return identity.Key{}, "", false
	}
	return identity.Key{Type: c.Name, ID: string(idRaw)}, c.Name, true
}

func (s *Serializer) serializeResource(entity any, acc *includedAccumulator, primary *identity.Set) (json.RawMessage, error) {
	rt := reflect.TypeOf(entity)
	c, ok := s.cfg.resolver.TryResolveType(rt)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, rt)
	}

	res := &Resource{Type: c.Name}

	if idField := c.IDField(); idField != nil {
		idVal, err := idField.Accessor.Get(entity)
		if err != nil {
			return nil, fmt.Errorf("hypermedia: read id of %s: %w", c.Name, err)
		}
		idRaw, err := s.cfg.codec.Serialize(idVal)
		if err != nil {
			return nil, fmt.Errorf("hypermedia: serialize id of %s: %w", c.Name, err)
		}
		res.ID = idRaw
	}

	attrs := orderedmap.New[string, json.RawMessage]()
	for _, f := range c.Fields {
		if !c.IsAttribute(f) {
			continue
		}
		v, err := f.Accessor.Get(entity)
		if err != nil {
			return nil, fmt.Errorf("hypermedia: read attribute %s.%s: %w", c.Name, f.Name, err)
		}
		raw, err := s.cfg.codec.Serialize(v)
		if err != nil {
			return nil, fmt.Errorf("hypermedia: serialize attribute %s.%s: %w", c.Name, f.Name, err)
		}
		if isJSONNull(raw) {
			continue
		}
		attrs.Set(naming.ToWireName(f.Name), raw)
	}
	if attrs.Len() > 0 {
		res.Attributes = attrs
	}

	rels := orderedmap.New[string, *RelationshipObject]()
	for _, r := range c.Relationships {
		ef := r.EffectiveField()
		if !ef.CanSerialize() {
			continue
		}
		relObj, err := s.serializeRelationship(entity, r, ef, acc, primary)
		if err != nil {
			return nil, fmt.Errorf("hypermedia: serialize relationship %s.%s: %w", c.Name, r.Name, err)
		}
		if relObj == nil {
			continue
		}
		rels.Set(naming.ToWireName(r.Name), relObj)
	}
	if rels.Len() > 0 {
		res.Relationships = rels
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("hypermedia: marshal resource %s: %w", c.Name, err)
	}
	return raw, nil
}

func (s *Serializer) serializeRelationship(owner any, r *contract.Relationship, ef *contract.Field, acc *includedAccumulator, primary *identity.Set) (*RelationshipObject, error) {
	value, err := ef.Accessor.Get(owner)
	if err != nil {
		return nil, err
	}

	relObj := &RelationshipObject{}
	if s.cfg.linkBinder != nil && r.URITemplate != "" {
		href, err := linktemplate.Expand(r.URITemplate, s.cfg.linkBinder, owner)
		if err != nil {
			return nil, err
		}
		if href != "" {
			relObj.Links = &Links{Related: href}
		}
	}

	switch r.Kind {
	case contract.BelongsTo:
		if ef == r.ViaField {
			if isNilEntity(value) {
				if relObj.Links == nil {
					return nil, nil
				}
				return relObj, nil
			}
			relatedContract, ok := s.cfg.resolver.TryResolveType(r.RelatedTo)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownType, r.RelatedTo)
			}
			idRaw, err := s.cfg.codec.Serialize(value)
			if err != nil {
				return nil, err
			}
			data, err := json.Marshal(Linkage{Type: relatedContract.Name, ID: idRaw})
			if err != nil {
				return nil, err
			}
			relObj.Data = data
			return relObj, nil
		}
		if isNilEntity(value) {
			if relObj.Links == nil {
				return nil, nil
			}
			return relObj, nil
		}
		raw, err := s.serializeLinkageAndInclude(value, acc, primary)
		if err != nil {
			return nil, err
		}
		relObj.Data = raw
		return relObj, nil

	case contract.HasMany:
		elems, ok := iterateHasMany(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNonIterableHasMany, r.Name)
		}
		linkages := make([]json.RawMessage, 0, len(elems))
		for _, e := range elems {
			if isNilEntity(e) {
				continue
			}
			raw, err := s.serializeLinkageAndInclude(e, acc, primary)
			if err != nil {
				return nil, err
			}
			linkages = append(linkages, raw)
		}
		data, err := json.Marshal(linkages)
		if err != nil {
			return nil, err
		}
		relObj.Data = data
		return relObj, nil
	}

	return relObj, nil
}

// serializeLinkageAndInclude returns the {type, id} linkage for entity
// and, unless entity is one of the document's primary resources or has
// already been queued, reserves its slot in acc and fills it with the
// entity's fully serialized resource object. The reserve happens before
// the recursive serializeResource call so that a cycle back to entity
// finds the slot already claimed and stops.
func (s *Serializer) serializeLinkageAndInclude(entity any, acc *includedAccumulator, primary *identity.Set) (json.RawMessage, error) {
	rt := reflect.TypeOf(entity)
	c, ok := s.cfg.resolver.TryResolveType(rt)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, rt)
	}
	idField := c.IDField()
	if idField == nil {
		return nil, fmt.Errorf("%w: %s has no id field to link", ErrShapeMismatch, c.Name)
	}
	idVal, err := idField.Accessor.Get(entity)
	if err != nil {
		return nil, err
	}
	idRaw, err := s.cfg.codec.Serialize(idVal)
	if err != nil {
		return nil, err
	}

	linkageRaw, err := json.Marshal(Linkage{Type: c.Name, ID: idRaw})
	if err != nil {
		return nil, err
	}

	key := identity.Key{Type: c.Name, ID: string(idRaw)}
	if !primary.Contains(key) {
		if idx, isNew := acc.reserve(key); isNew {
			raw, err := s.serializeResource(entity, acc, primary)
			if err != nil {
				return nil, err
			}
			acc.fill(idx, raw)
		}
	}
	return linkageRaw, nil
}

// includedAccumulator collects the "included" array in depth-first
// first-encounter order even though a resource's own JSON bytes (which
// may themselves trigger further inclusions) are only known after its
// slot has already been claimed.
type includedAccumulator struct {
	slots map[identity.Key]int
	raw   []json.RawMessage
}

func newIncludedAccumulator() *includedAccumulator {
	return &includedAccumulator{slots: make(map[identity.Key]int)}
}

func (a *includedAccumulator) reserve(key identity.Key) (idx int, isNew bool) {
	if idx, ok := a.slots[key]; ok {
		return idx, false
	}
	idx = len(a.raw)
	a.slots[key] = idx
	a.raw = append(a.raw, nil)
	return idx, true
}

func (a *includedAccumulator) fill(idx int, raw json.RawMessage) {
	a.raw[idx] = raw
}

func (a *includedAccumulator) collect() []json.RawMessage {
	return a.raw
}
