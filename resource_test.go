package hypermedia

import "testing"

func TestPeekIdentity(t *testing.T) {
	typ, id, ok := peekIdentity([]byte(`{"type":"posts","id":"1"}`))
	if !ok {
		t.Fatal("expected peekIdentity to succeed")
	}
	if typ != "posts" {
		t.Errorf("type = %q, want posts", typ)
	}
	if string(id) != `"1"` {
		t.Errorf("id = %s, want \"1\"", id)
	}
}

func TestPeekIdentityMissingType(t *testing.T) {
	if _, _, ok := peekIdentity([]byte(`{"id":"1"}`)); ok {
		t.Fatal("expected peekIdentity to fail without a type member")
	}
}

func TestPeekIdentityMalformed(t *testing.T) {
	if _, _, ok := peekIdentity([]byte(`not json`)); ok {
		t.Fatal("expected peekIdentity to fail on malformed input")
	}
}
