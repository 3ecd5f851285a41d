package hypermedia

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Resource is one JSON:API resource object, as it appears standalone
// under "data" or as an entry of "included". Field order matches the
// fixed JSON:API member order (type, id, attributes, relationships);
// encoding/json emits struct fields in declaration order, so no custom
// MarshalJSON is required at this level.
type Resource struct {
	Type          string                                               `json:"type"`
	ID            json.RawMessage                                      `json:"id,omitempty"`
	Attributes    *orderedmap.OrderedMap[string, json.RawMessage]      `json:"attributes,omitempty"`
	Relationships *orderedmap.OrderedMap[string, *RelationshipObject]  `json:"relationships,omitempty"`
}

// Links holds the subset of the JSON:API links object this codec
// produces: a single "related" href per relationship.
type Links struct {
	Related string `json:"related,omitempty"`
}

// RelationshipObject is the value of one member of a resource's
// "relationships" object.
type RelationshipObject struct {
	Links *Links          `json:"links,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Linkage is the minimal {type, id} pair used inside a relationship's
// "data" member.
type Linkage struct {
	Type string          `json:"type"`
	ID   json.RawMessage `json:"id,omitempty"`
}

// wireResource is the shape used to decode an inbound resource object. It
// mirrors Resource but keeps Attributes/Relationships as ordered maps of
// raw members so the deserializer controls decode order and can tell a
// missing member from a null one.
type wireResource struct {
	Type          string                                                `json:"type"`
	ID            json.RawMessage                                       `json:"id"`
	Attributes    *orderedmap.OrderedMap[string, json.RawMessage]       `json:"attributes"`
	Relationships *orderedmap.OrderedMap[string, wireRelationshipObject] `json:"relationships"`
}

// wireRelationshipObject distinguishes an absent "data" member (Data is
// nil) from a present-but-null one (Data points at the bytes "null"): the
// deserializer skips the former and processes the latter, which clears a
// BelongsTo value.
type wireRelationshipObject struct {
	Data *json.RawMessage `json:"data"`
}

// UnmarshalJSON keeps a present-but-null "data" member as the bytes
// "null"; encoding/json alone would set the pointer to nil.
func (w *wireRelationshipObject) UnmarshalJSON(b []byte) error {
	var m struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	w.Data = nil
	if m.Data != nil {
		w.Data = &m.Data
	}
	return nil
}

type wireLinkage struct {
	Type string          `json:"type"`
	ID   json.RawMessage `json:"id"`
}

func peekIdentity(raw json.RawMessage) (typ string, id json.RawMessage, ok bool) {
	var head struct {
		Type string          `json:"type"`
		ID   json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || head.Type == "" {
		return "", nil, false
	}
	return head.Type, head.ID, true
}
