// Package hypermedia implements the core of a JSON:API codec: a
// bidirectional translation between in-memory domain entities and the
// JSON:API 1.0 document format, driven by a declarative contract model
// from the sibling contract package.
//
// The package produces compound documents (a primary "data" member plus
// transitively discovered "included" resources) on serialization, and
// reconstructs an object graph — including shared references between
// primary and included resources — on deserialization.
//
// # Quick start
//
//	resolver := contract.NewResolver(postContract, userContract)
//	ser := hypermedia.NewSerializer(resolver)
//	doc, err := ser.SerializeEntity(post)
//
//	body, err := json.Marshal(doc)
//
//	des := hypermedia.NewDeserializer(resolver)
//	var received hypermedia.Document
//	json.Unmarshal(body, &received)
//	entity, err := des.DeserializeEntity(&received)
//
// # Scope
//
// This package is deliberately narrow. It has no knowledge of HTTP,
// persistence, sparse fieldsets, error documents, or JSON:API extensions —
// those are the caller's concern. It consumes two small collaborator
// interfaces, scalar.Codec (leaf value (de)serialization) and
// linktemplate.Binder (relationship "related" link construction), both of
// which have usable default implementations.
//
// Every operation is synchronous, single-threaded, and non-reentrant with
// respect to its own Serializer/Deserializer instance; a resolver, once
// built, is read-only and safe to share across concurrent operations.
package hypermedia
