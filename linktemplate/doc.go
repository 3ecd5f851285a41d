// Package linktemplate binds a relationship's runtime resource state to
// an RFC 6570 URI template, producing the "related" link href JSON:API
// puts on a relationship object. It is an external collaborator the
// core codec never constructs on its own: a Contract's Relationship
// carries a template string, and a Binder supplies the values that fill
// it in for one particular entity instance.
package linktemplate
