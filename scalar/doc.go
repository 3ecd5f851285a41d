// Package scalar defines the leaf-value codec the core hypermedia package
// treats as an external collaborator: something that
// turns a single scalar domain value into a JSON value and back, given
// the field's declared static type. DefaultCodec is a reasonable
// stdlib-backed implementation with one addition (uuid.UUID support);
// callers with richer scalar needs — custom date formats, money types,
// and so on — supply their own Codec via hypermedia.WithScalarCodec.
package scalar
