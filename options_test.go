package hypermedia

import (
	"log/slog"
	"testing"

	"github.com/kinkade/hypermedia/scalar"
)

type stubCodec struct{ scalar.DefaultCodec }

func TestNewConfigDefaults(t *testing.T) {
	cfg := newConfig(nil, nil)
	if cfg.jsonAPI == nil || cfg.jsonAPI.Version != "1.0" {
		t.Errorf("expected default jsonapi version 1.0, got %+v", cfg.jsonAPI)
	}
	if _, ok := cfg.codec.(scalar.DefaultCodec); !ok {
		t.Errorf("expected DefaultCodec by default, got %T", cfg.codec)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	codec := stubCodec{}
	cfg := newConfig(nil, []Option{
		WithScalarCodec(codec),
		WithJSONAPIVersion("1.1"),
		WithLogHandler(slog.NewTextHandler(nil, nil)),
	})
	if cfg.codec != scalar.Codec(codec) {
		t.Errorf("expected the overridden codec to be used")
	}
	if cfg.jsonAPI.Version != "1.1" {
		t.Errorf("Version = %q, want 1.1", cfg.jsonAPI.Version)
	}
	if cfg.logHandler == nil {
		t.Error("expected a log handler to be set")
	}
}
