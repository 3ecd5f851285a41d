// Package identity implements resource identity: the (type, id) pair
// used to deduplicate resources during serialization and to
// short-circuit and share instances during deserialization.
//
// Key is a plain comparable struct of two strings, so it works as a Go
// map key with no custom hash function — Go gives structural value
// equality and hashing on comparable structs for free.
package identity

// Key is the (type, id) resource identity. The zero Key (both fields
// empty) represents "no identity" and is never treated as equal to
// another Key by callers in this module; they gate on a has-identity
// flag before comparing or storing one.
type Key struct {
	Type string
	ID   string
}

// Set is a visited-set keyed by resource identity, used by the
// serializer's included-resource walk to guarantee each identity is
// emitted at most once and cyclic graphs terminate.
type Set struct {
	seen map[Key]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[Key]struct{})}
}

// Contains reports whether k has already been added.
func (s *Set) Contains(k Key) bool {
	_, ok := s.seen[k]
	return ok
}

// Add records k as visited.
func (s *Set) Add(k Key) {
	s.seen[k] = struct{}{}
}

// Cache is an identity-keyed materialization cache, used by the
// deserializer to break cycles and to guarantee that resources sharing an
// identity across "data" and "included" materialize to the same instance.
type Cache struct {
	values map[Key]any
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{values: make(map[Key]any)}
}

// Get returns the cached instance for k, if any.
func (c *Cache) Get(k Key) (any, bool) {
	v, ok := c.values[k]
	return v, ok
}

// Set records instance as the materialized value for k. Callers must call
// this before populating the instance's fields, so a relationship cycle
// resolves against the same not-yet-fully-populated instance rather than
// recursing forever.
func (c *Cache) Set(k Key, instance any) {
	c.values[k] = instance
}
