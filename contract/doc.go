// Package contract describes JSON:API resource types at runtime: their
// wire name, the runtime type of the domain entity they back, a factory
// for empty instances, and the ordered fields and relationships used to
// read and write them.
//
// A Contract is the result of configuration, not the configuration DSL
// itself — the codec (package hypermedia) only ever consumes an
// already-built Resolver. This package offers three ways to arrive at a
// Contract: a bare struct literal for full control, Builder for a small
// amount of fluent sugar, and Reflect for the common case of a plain
// struct backed by `jsonapi` tags.
//
// # Reflection example
//
//	type Post struct {
//	    ID    int    `jsonapi:"id"`
//	    Title string `jsonapi:"attr"`
//	}
//	postContract, err := contract.Reflect[Post]("posts")
//
// # Manual example
//
//	c := contract.NewBuilder("posts", reflect.TypeOf(&Post{}), func() any { return &Post{} }).
//	    Field(&contract.Field{Name: "id", Options: contract.OptID | contract.OptDefault, Accessor: idAccessor}).
//	    Field(&contract.Field{Name: "title", Options: contract.OptDefault, Accessor: titleAccessor}).
//	    Build()
package contract
