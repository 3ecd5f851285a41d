package hypermedia

import (
	"log/slog"

	"github.com/kinkade/hypermedia/contract"
	"github.com/kinkade/hypermedia/internal/codeclog"
	"github.com/kinkade/hypermedia/linktemplate"
	"github.com/kinkade/hypermedia/scalar"
)

// config is the shared option target for both Serializer and
// Deserializer: a struct of defaults mutated in place by each Option,
// keeping construction-time collaborators optional without a
// combinatorial constructor.
type config struct {
	resolver   *contract.Resolver
	codec      scalar.Codec
	linkBinder linktemplate.Binder
	logHandler slog.Handler
	jsonAPI    *JSONAPIObject
}

func newConfig(resolver *contract.Resolver, opts []Option) *config {
	c := &config{
		resolver: resolver,
		codec:    scalar.DefaultCodec{},
		jsonAPI:  &JSONAPIObject{Version: "1.0"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) logger() *slog.Logger {
	return codeclog.NewLogger(c.logHandler)
}

// Option configures a Serializer or Deserializer.
type Option func(*config)

// WithScalarCodec overrides the default encoding/json-backed scalar codec.
func WithScalarCodec(codec scalar.Codec) Option {
	return func(c *config) { c.codec = codec }
}

// WithLinkBinder supplies the Binder consulted to expand a relationship's
// URI template into a "related" link href. Without this option,
// relationship objects carry a "data" member but no "links" member.
func WithLinkBinder(b linktemplate.Binder) Option {
	return func(c *config) { c.linkBinder = b }
}

// WithLogHandler routes internal diagnostic logging through handler. Log
// records are logged at slog.LevelDebug and are never required to
// interpret a returned error; without this option, logging is discarded.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *config) { c.logHandler = handler }
}

// WithJSONAPIVersion overrides the "jsonapi.version" member a Serializer
// writes into a SerializeEntity document. The default is "1.0".
// SerializeMany documents carry no "jsonapi" member.
func WithJSONAPIVersion(version string) Option {
	return func(c *config) { c.jsonAPI = &JSONAPIObject{Version: version} }
}
