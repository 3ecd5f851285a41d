package hypermedia

import (
	"encoding/json"
	"testing"
)

func TestDeserializeEntityPlainAttributes(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{Data: json.RawMessage(`{"type":"users","id":"1","attributes":{"name":"Ada"}}`)}
	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("DeserializeEntity error: %v", err)
	}
	user, ok := entity.(*serUser)
	if !ok {
		t.Fatalf("entity type = %T, want *serUser", entity)
	}
	if user.ID != 1 || user.Name != "Ada" {
		t.Errorf("user = %+v", user)
	}
}

func TestDeserializeEntityRejectsArrayData(t *testing.T) {
	des := NewDeserializer(serTestResolver(t))
	doc := &Document{Data: json.RawMessage(`[{"type":"users","id":"1"}]`)}
	if _, err := des.DeserializeEntity(doc); err == nil {
		t.Fatal("expected an error deserializing array data as a single entity")
	}
}

func TestDeserializeEntityRejectsEmptyData(t *testing.T) {
	des := NewDeserializer(serTestResolver(t))
	if _, err := des.DeserializeEntity(&Document{}); err == nil {
		t.Fatal("expected an error for a document with no data")
	}
}

func TestDeserializeManyRejectsSingleData(t *testing.T) {
	des := NewDeserializer(serTestResolver(t))
	doc := &Document{Data: json.RawMessage(`{"type":"users","id":"1"}`)}
	if _, err := des.DeserializeMany(doc); err == nil {
		t.Fatal("expected an error deserializing single data as many")
	}
}

func TestDeserializeUnknownType(t *testing.T) {
	des := NewDeserializer(serTestResolver(t))
	doc := &Document{Data: json.RawMessage(`{"type":"widgets","id":"1"}`)}
	if _, err := des.DeserializeEntity(doc); err == nil {
		t.Fatal("expected an error for an unregistered resource type")
	}
}

func TestDeserializeBelongsToViaIncluded(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{
		Data: json.RawMessage(`{
			"type": "posts",
			"id": "10",
			"attributes": {"title": "Hello"},
			"relationships": {
				"author": {"data": {"type": "users", "id": "1"}}
			}
		}`),
		Included: []json.RawMessage{
			json.RawMessage(`{"type":"users","id":"1","attributes":{"name":"Ada"}}`),
		},
	}

	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("DeserializeEntity error: %v", err)
	}
	post, ok := entity.(*serPost)
	if !ok {
		t.Fatalf("entity type = %T, want *serPost", entity)
	}
	if post.AuthorID != 1 {
		t.Errorf("AuthorID = %d, want 1", post.AuthorID)
	}
	if post.Author == nil || post.Author.Name != "Ada" {
		t.Errorf("Author = %+v", post.Author)
	}
}

func TestDeserializeBelongsToNullClears(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{Data: json.RawMessage(`{
		"type": "posts",
		"id": "10",
		"attributes": {"title": "Hello"},
		"relationships": {"author": {"data": null}}
	}`)}

	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("DeserializeEntity error: %v", err)
	}
	post := entity.(*serPost)
	if post.Author != nil {
		t.Errorf("expected Author to be nil, got %+v", post.Author)
	}
	if post.AuthorID != 0 {
		t.Errorf("expected AuthorID to be zeroed, got %d", post.AuthorID)
	}
}

func TestDeserializeAbsentRelationshipLeavesFieldUntouched(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{Data: json.RawMessage(`{
		"type": "posts",
		"id": "10",
		"attributes": {"title": "Hello"}
	}`)}

	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("DeserializeEntity error: %v", err)
	}
	post := entity.(*serPost)
	if post.Author != nil {
		t.Errorf("expected Author to remain nil (zero value), got %+v", post.Author)
	}
}

func TestDeserializeBelongsToUnresolvedLinkageIsNotError(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{Data: json.RawMessage(`{
		"type": "posts",
		"id": "10",
		"attributes": {"title": "Hello"},
		"relationships": {
			"author": {"data": {"type": "users", "id": "999"}}
		}
	}`)}

	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("expected an unresolved relationship to not be an error, got: %v", err)
	}
	post := entity.(*serPost)
	if post.Author != nil {
		t.Errorf("expected Author to remain unset, got %+v", post.Author)
	}
}

func TestDeserializeHasManyUnresolvedLinkageIsSkipped(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{
		Data: json.RawMessage(`{
			"type": "posts",
			"id": "10",
			"attributes": {"title": "Hello"},
			"relationships": {
				"comments": {"data": [
					{"type": "comments", "id": "100"},
					{"type": "comments", "id": "999"}
				]}
			}
		}`),
		Included: []json.RawMessage{
			json.RawMessage(`{"type":"comments","id":"100","attributes":{"body":"nice"}}`),
		},
	}

	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("expected an unresolved linkage to not be an error, got: %v", err)
	}
	post := entity.(*serPost)
	if len(post.Comments) != 1 || post.Comments[0].Body != "nice" {
		t.Errorf("expected only the resolvable comment to survive, got %+v", post.Comments)
	}
}

func TestDeserializeHasManyAndCycle(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{
		Data: json.RawMessage(`{
			"type": "posts",
			"id": "10",
			"attributes": {"title": "Hello"},
			"relationships": {
				"comments": {"data": [{"type": "comments", "id": "100"}]}
			}
		}`),
		Included: []json.RawMessage{
			json.RawMessage(`{
				"type": "comments",
				"id": "100",
				"attributes": {"body": "nice"},
				"relationships": {"post": {"data": {"type": "posts", "id": "10"}}}
			}`),
		},
	}

	entity, err := des.DeserializeEntity(doc)
	if err != nil {
		t.Fatalf("DeserializeEntity error: %v", err)
	}
	post := entity.(*serPost)
	if len(post.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(post.Comments))
	}
	comment := post.Comments[0]
	if comment.Body != "nice" {
		t.Errorf("Body = %q", comment.Body)
	}
	if comment.Post != post {
		t.Error("expected the comment's Post to be the same instance as the deserialized post (identity sharing)")
	}
}

func TestDeserializeManyEntities(t *testing.T) {
	resolver := serTestResolver(t)
	des := NewDeserializer(resolver)

	doc := &Document{Data: json.RawMessage(`[
		{"type":"users","id":"1","attributes":{"name":"Ada"}},
		{"type":"users","id":"2","attributes":{"name":"Alan"}}
	]`)}

	entities, err := des.DeserializeMany(doc)
	if err != nil {
		t.Fatalf("DeserializeMany error: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("len = %d, want 2", len(entities))
	}
	if entities[0].(*serUser).Name != "Ada" || entities[1].(*serUser).Name != "Alan" {
		t.Errorf("entities = %+v", entities)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	resolver := serTestResolver(t)
	ser := NewSerializer(resolver)
	des := NewDeserializer(resolver)

	author := &serUser{ID: 1, Name: "Ada"}
	post := &serPost{ID: 10, Title: "Hello", AuthorID: 1, Author: author}
	comment := &serComment{ID: 100, Body: "nice", Post: post}
	post.Comments = []*serComment{comment}

	doc, err := ser.SerializeEntity(post)
	if err != nil {
		t.Fatalf("SerializeEntity error: %v", err)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	var received Document
	if err := json.Unmarshal(body, &received); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	entity, err := des.DeserializeEntity(&received)
	if err != nil {
		t.Fatalf("DeserializeEntity error: %v", err)
	}

	roundTripped := entity.(*serPost)
	if roundTripped.ID != post.ID || roundTripped.Title != post.Title {
		t.Errorf("roundTripped = %+v", roundTripped)
	}
	if roundTripped.Author == nil || roundTripped.Author.Name != "Ada" {
		t.Errorf("Author = %+v", roundTripped.Author)
	}
	if len(roundTripped.Comments) != 1 || roundTripped.Comments[0].Body != "nice" {
		t.Errorf("Comments = %+v", roundTripped.Comments)
	}
	if roundTripped.Comments[0].Post != roundTripped {
		t.Error("expected the round-tripped comment to point back at the same post instance")
	}
}
