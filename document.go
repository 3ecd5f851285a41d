package hypermedia

import (
	"bytes"
	"encoding/json"
)

// JSONAPIObject is the top-level "jsonapi" envelope member.
type JSONAPIObject struct {
	Version string `json:"version"`
}

// Document is the JSON:API envelope produced by a Serializer and consumed
// by a Deserializer. Data holds the raw "data" member exactly as it will
// be written to (or was read from) the wire: a single resource object for
// SerializeEntity/DeserializeEntity, or an array of resource objects for
// SerializeMany/DeserializeMany. Keeping it as json.RawMessage lets one
// Document type serve both directions without forcing a shape decision
// before it is known.
type Document struct {
	JSONAPI  *JSONAPIObject    `json:"jsonapi,omitempty"`
	Data     json.RawMessage   `json:"data,omitempty"`
	Included []json.RawMessage `json:"included,omitempty"`
}

func isArrayShape(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isJSONNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
