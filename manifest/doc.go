// Package manifest reads a declarative YAML description of the resource
// types a document is expected to use. It never builds domain Go types
// or a contract.Resolver on its own — a contract still requires a real
// backing struct and accessors — but it gives host programs such as
// cmd/jsonapi-inspect a lightweight way to
// validate which resource types a payload references and to react when
// that declaration changes on disk.
package manifest
