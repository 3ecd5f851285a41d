// Command jsonapi-inspect reads a JSON:API document from stdin, checks
// its resource types against a declarative manifest, and re-encodes it
// to stdout. It is a manual round-trip harness: feeding its own output
// back in should produce byte-identical JSON, since Document/Resource
// encoding is order-preserving and free of information loss.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kinkade/hypermedia"
	"github.com/kinkade/hypermedia/cmd/jsonapi-inspect/config"
	"github.com/kinkade/hypermedia/manifest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonapi-inspect:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		if cfg.Strict {
			return fmt.Errorf("load manifest: %w", err)
		}
		log.Warn("continuing without a manifest", "err", err)
		m = &manifest.Manifest{}
	}
	known := m.KnownTypes()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var doc hypermedia.Document
	if err := json.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	for _, typ := range resourceTypes(doc) {
		if _, ok := known[typ]; !ok {
			if cfg.Strict {
				return fmt.Errorf("resource type %q is not declared in %s", typ, cfg.ManifestPath)
			}
			log.Warn("undeclared resource type", "type", typ)
		}
	}

	out, err := json.MarshalIndent(&doc, "", indentString(cfg.Indent))
	if err != nil {
		return fmt.Errorf("re-encode document: %w", err)
	}
	out = append(out, '\n')
	_, err = os.Stdout.Write(out)
	return err
}

func indentString(width int) string {
	if width <= 0 {
		return ""
	}
	b := make([]byte, width)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

type identityHead struct {
	Type string `json:"type"`
}

func resourceTypes(doc hypermedia.Document) []string {
	var types []string
	appendType := func(raw json.RawMessage) {
		var h identityHead
		if json.Unmarshal(raw, &h) == nil && h.Type != "" {
			types = append(types, h.Type)
		}
	}

	var single json.RawMessage
	var many []json.RawMessage
	if json.Unmarshal(doc.Data, &many) == nil && len(many) > 0 {
		for _, raw := range many {
			appendType(raw)
		}
	} else if json.Unmarshal(doc.Data, &single) == nil && len(single) > 0 {
		appendType(single)
	}
	for _, raw := range doc.Included {
		appendType(raw)
	}
	return types
}
