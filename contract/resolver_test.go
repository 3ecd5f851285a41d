package contract

import "testing"

type resolverA struct{}
type resolverB struct{}

func TestResolver(t *testing.T) {
	ca, err := Reflect[resolverA]("as")
	if err != nil {
		t.Fatal(err)
	}
	cb, err := Reflect[resolverB]("bs")
	if err != nil {
		t.Fatal(err)
	}

	r := NewResolver(ca, cb)

	if got, ok := r.TryResolveName("as"); !ok || got != ca {
		t.Errorf("TryResolveName(as) = %v, %v", got, ok)
	}
	if _, ok := r.TryResolveName("missing"); ok {
		t.Error("expected TryResolveName(missing) to miss")
	}

	if got, ok := r.TryResolveType(ca.RuntimeType); !ok || got != ca {
		t.Errorf("TryResolveType(%v) = %v, %v", ca.RuntimeType, got, ok)
	}

	if len(r.Contracts()) != 2 {
		t.Errorf("Contracts() len = %d, want 2", len(r.Contracts()))
	}
}

func TestResolverIgnoresNilContracts(t *testing.T) {
	r := NewResolver(nil)
	if len(r.Contracts()) != 0 {
		t.Errorf("expected a nil contract to be ignored, got %d contracts", len(r.Contracts()))
	}
}
