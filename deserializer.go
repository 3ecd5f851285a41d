package hypermedia

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kinkade/hypermedia/contract"
	"github.com/kinkade/hypermedia/internal/codeclog"
	"github.com/kinkade/hypermedia/internal/identity"
	"github.com/kinkade/hypermedia/internal/naming"
)

// Deserializer translates JSON:API documents into domain entities.
type Deserializer struct {
	cfg *config
}

// NewDeserializer builds a Deserializer backed by resolver.
func NewDeserializer(resolver *contract.Resolver, opts ...Option) *Deserializer {
	return &Deserializer{cfg: newConfig(resolver, opts)}
}

// DeserializeEntity materializes the single resource in doc's "data"
// member, resolving its relationships against doc's "included" array and
// against doc.Data itself for self- and sibling-referential linkages.
func (d *Deserializer) DeserializeEntity(doc *Document) (any, error) {
	if doc == nil || len(doc.Data) == 0 || isJSONNull(doc.Data) {
		return nil, fmt.Errorf("%w: document has no data member", ErrInvalidArgument)
	}
	if isArrayShape(doc.Data) {
		return nil, fmt.Errorf("%w: expected a single resource, got an array", ErrShapeMismatch)
	}

	dctx := newDeserializeContext()
	dctx.registerIncluded(doc.Included)
	dctx.register(doc.Data)

	entity, err := d.materializeResource(doc.Data, dctx)
	if err != nil {
		return nil, err
	}
	ctx := codeclog.WithOperation(context.Background(), codeclog.OpDeserialize)
	d.cfg.logger().DebugContext(ctx, "deserialized entity", "included", len(doc.Included))
	return entity, nil
}

// DeserializeMany materializes every resource in doc's "data" array.
func (d *Deserializer) DeserializeMany(doc *Document) ([]any, error) {
	if doc == nil || len(doc.Data) == 0 || isJSONNull(doc.Data) {
		return nil, fmt.Errorf("%w: document has no data member", ErrInvalidArgument)
	}
	if !isArrayShape(doc.Data) {
		return nil, fmt.Errorf("%w: expected an array, got a single resource", ErrShapeMismatch)
	}

	var rawList []json.RawMessage
	if err := json.Unmarshal(doc.Data, &rawList); err != nil {
		return nil, fmt.Errorf("hypermedia: unmarshal data array: %w", err)
	}

	dctx := newDeserializeContext()
	dctx.registerIncluded(doc.Included)
	for _, raw := range rawList {
		dctx.register(raw)
	}

	out := make([]any, 0, len(rawList))
	for _, raw := range rawList {
		entity, err := d.materializeResource(raw, dctx)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	ctx := codeclog.WithOperation(context.Background(), codeclog.OpDeserialize)
	d.cfg.logger().DebugContext(ctx, "deserialized collection", "count", len(out), "included", len(doc.Included))
	return out, nil
}

func (d *Deserializer) materializeResource(raw json.RawMessage, dctx *deserializeContext) (any, error) {
	var wr wireResource
	if err := json.Unmarshal(raw, &wr); err != nil {
		return nil, fmt.Errorf("hypermedia: unmarshal resource: %w", err)
	}
	if wr.Type == "" {
		return nil, fmt.Errorf("%w: resource object has no type member", ErrShapeMismatch)
	}

	c, ok := d.cfg.resolver.TryResolveName(wr.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, wr.Type)
	}

	key := identity.Key{Type: wr.Type, ID: string(wr.ID)}
	if inst, found := dctx.cache.Get(key); found {
		return inst, nil
	}

	instance := c.NewInstance()
	dctx.cache.Set(key, instance)

	if idField := c.IDField(); idField.CanDeserialize() && len(wr.ID) > 0 {
		idVal, err := d.cfg.codec.Deserialize(idField.Type, wr.ID)
		if err != nil {
			return nil, fmt.Errorf("hypermedia: deserialize id of %s: %w", wr.Type, err)
		}
		if err := idField.Accessor.Set(instance, idVal); err != nil {
			return nil, fmt.Errorf("hypermedia: set id of %s: %w", wr.Type, err)
		}
	}

	if wr.Attributes != nil {
		for pair := wr.Attributes.Oldest(); pair != nil; pair = pair.Next() {
			f := findAttributeField(c, pair.Key)
			if f == nil {
				continue
			}
			val, err := d.cfg.codec.Deserialize(f.Type, pair.Value)
			if err != nil {
				return nil, fmt.Errorf("hypermedia: deserialize attribute %s.%s: %w", wr.Type, f.Name, err)
			}
			if err := f.Accessor.Set(instance, val); err != nil {
				return nil, fmt.Errorf("hypermedia: set attribute %s.%s: %w", wr.Type, f.Name, err)
			}
		}
	}

	if wr.Relationships != nil {
		for pair := wr.Relationships.Oldest(); pair != nil; pair = pair.Next() {
			r := findRelationship(c, pair.Key)
			if r == nil || !r.ShouldDeserialize() {
				continue
			}
			// An absent "data" member means the relationship was not
			// included in the payload at all and is left untouched; a
			// present-but-null one is processed below to clear it.
			if pair.Value.Data == nil {
				continue
			}
			if err := d.applyRelationship(instance, r, *pair.Value.Data, dctx); err != nil {
				return nil, fmt.Errorf("hypermedia: relationship %s.%s: %w", wr.Type, r.Name, err)
			}
		}
	}

	return instance, nil
}

func findAttributeField(c *contract.Contract, wireKey string) *contract.Field {
	for _, f := range c.Fields {
		if c.ShouldDeserializeField(f) && naming.EqualFold(f.Name, wireKey) {
			return f
		}
	}
	return nil
}

func findRelationship(c *contract.Contract, wireKey string) *contract.Relationship {
	for _, r := range c.Relationships {
		if naming.EqualFold(r.Name, wireKey) {
			return r
		}
	}
	return nil
}

func (d *Deserializer) applyRelationship(instance any, r *contract.Relationship, dataRaw json.RawMessage, dctx *deserializeContext) error {
	switch r.Kind {
	case contract.BelongsTo:
		return d.applyBelongsTo(instance, r, dataRaw, dctx)
	case contract.HasMany:
		return d.applyHasMany(instance, r, dataRaw, dctx)
	default:
		return nil
	}
}

func (d *Deserializer) applyBelongsTo(instance any, r *contract.Relationship, dataRaw json.RawMessage, dctx *deserializeContext) error {
	if isJSONNull(dataRaw) {
		if r.Field.CanDeserialize() {
			if err := r.Field.Accessor.Set(instance, nil); err != nil {
				return err
			}
		}
		if r.ViaField.CanDeserialize() {
			if err := r.ViaField.Accessor.Set(instance, nil); err != nil {
				return err
			}
		}
		return nil
	}
	if isArrayShape(dataRaw) {
		return fmt.Errorf("%w: belongsTo relationship has array data", ErrShapeMismatch)
	}

	var linkage wireLinkage
	if err := json.Unmarshal(dataRaw, &linkage); err != nil {
		return fmt.Errorf("hypermedia: unmarshal linkage: %w", err)
	}

	if r.Field.CanDeserialize() {
		related, found, err := d.resolveByLinkage(dctx, identity.Key{Type: linkage.Type, ID: string(linkage.ID)})
		if err != nil {
			return err
		}
		if found {
			if err := r.Field.Accessor.Set(instance, related); err != nil {
				return err
			}
		}
	}
	if r.ViaField.CanDeserialize() {
		idVal, err := d.cfg.codec.Deserialize(r.ViaField.Type, linkage.ID)
		if err != nil {
			return fmt.Errorf("hypermedia: deserialize foreign key: %w", err)
		}
		if err := r.ViaField.Accessor.Set(instance, idVal); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deserializer) applyHasMany(instance any, r *contract.Relationship, dataRaw json.RawMessage, dctx *deserializeContext) error {
	if !r.Field.CanDeserialize() {
		return nil
	}

	var linkages []wireLinkage
	switch {
	case isJSONNull(dataRaw):
		linkages = nil
	case isArrayShape(dataRaw):
		if err := json.Unmarshal(dataRaw, &linkages); err != nil {
			return fmt.Errorf("hypermedia: unmarshal linkage array: %w", err)
		}
	default:
		return fmt.Errorf("%w: hasMany relationship data is not an array", ErrShapeMismatch)
	}

	elems := make([]any, 0, len(linkages))
	for _, lk := range linkages {
		related, found, err := d.resolveByLinkage(dctx, identity.Key{Type: lk.Type, ID: string(lk.ID)})
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		elems = append(elems, related)
	}

	coll, err := buildCollection(r.Field.Type, elems)
	if err != nil {
		return err
	}
	return r.Field.Accessor.Set(instance, coll)
}

// resolveByLinkage looks up the entity a linkage points at, either
// already materialized or available by identity in data/included. A
// linkage that resolves to neither is not an error: it reports
// found=false so the caller leaves the relationship unset.
func (d *Deserializer) resolveByLinkage(dctx *deserializeContext, key identity.Key) (instance any, found bool, err error) {
	if inst, ok := dctx.cache.Get(key); ok {
		return inst, true, nil
	}
	raw, ok := dctx.byIdentity[key]
	if !ok {
		return nil, false, nil
	}
	inst, err := d.materializeResource(raw, dctx)
	if err != nil {
		return nil, false, err
	}
	return inst, true, nil
}

// deserializeContext is the per-call scratch state threaded through a
// resource graph walk: the raw bytes available for lookup by identity
// (primary data plus included), and the cache of already-materialized
// instances that gives shared references and cycle safety.
type deserializeContext struct {
	byIdentity map[identity.Key]json.RawMessage
	cache      *identity.Cache
}

func newDeserializeContext() *deserializeContext {
	return &deserializeContext{
		byIdentity: make(map[identity.Key]json.RawMessage),
		cache:      identity.NewCache(),
	}
}

func (dctx *deserializeContext) registerIncluded(included []json.RawMessage) {
	for _, raw := range included {
		dctx.register(raw)
	}
}

func (dctx *deserializeContext) register(raw json.RawMessage) {
	typ, id, ok := peekIdentity(raw)
	if !ok {
		return
	}
	dctx.byIdentity[identity.Key{Type: typ, ID: string(id)}] = raw
}
