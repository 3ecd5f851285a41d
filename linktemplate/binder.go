package linktemplate

import (
	"fmt"

	"github.com/yosida95/uritemplate/v3"
)

// Binder produces the variable values used to expand one relationship's
// URI template for a given owning entity instance.
type Binder interface {
	// Bind returns the template variables for instance. Implementations
	// that have nothing to contribute for a given instance may return an
	// empty map; Expand then expands the corresponding template variables
	// to nothing, per RFC 6570 semantics for undefined variables.
	Bind(instance any) (uritemplate.Values, error)
}

// BinderFunc adapts a function to a Binder.
type BinderFunc func(instance any) (uritemplate.Values, error)

// Bind implements Binder.
func (f BinderFunc) Bind(instance any) (uritemplate.Values, error) {
	return f(instance)
}

// NoopBinder contributes no variables. It is the zero value used when a
// relationship's template needs no per-instance substitution, e.g. a
// template that only references path segments fixed at contract
// construction time.
var NoopBinder Binder = BinderFunc(func(any) (uritemplate.Values, error) {
	return uritemplate.Values{}, nil
})

// FieldBinder binds a single template variable to the string form of one
// field read off the owning instance through get.
type FieldBinder struct {
	Variable string
	Get      func(instance any) (string, error)
}

// Bind implements Binder.
func (b FieldBinder) Bind(instance any) (uritemplate.Values, error) {
	v, err := b.Get(instance)
	if err != nil {
		return nil, fmt.Errorf("linktemplate: bind %q: %w", b.Variable, err)
	}
	values := uritemplate.Values{}
	values.Set(b.Variable, uritemplate.String(v))
	return values, nil
}

// IDBinder binds the "id" template variable to the resource's own
// identifier, the common case of a self-referential related link such
// as "/posts/{id}/author".
func IDBinder(idOf func(instance any) (string, error)) Binder {
	return FieldBinder{Variable: "id", Get: idOf}
}

// Expand parses tmpl and expands it against the values Binder b produces
// for instance. The template is parsed on every call; a malformed
// template is reported as an error, as is an error from the Binder. A nil
// Binder is treated as NoopBinder.
func Expand(tmpl string, b Binder, instance any) (string, error) {
	t, err := uritemplate.New(tmpl)
	if err != nil {
		return "", fmt.Errorf("linktemplate: parse %q: %w", tmpl, err)
	}
	if b == nil {
		b = NoopBinder
	}
	values, err := b.Bind(instance)
	if err != nil {
		return "", err
	}
	return t.Expand(values)
}
