package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
resources:
  - type: posts
    description: A blog post
    attributes: [title, body]
    relationships:
      - name: author
        kind: belongsTo
        relatedType: users
  - type: users
    attributes: [name]
`

func TestLoadAndKnownTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(m.Resources) != 2 {
		t.Fatalf("Resources len = %d, want 2", len(m.Resources))
	}

	known := m.KnownTypes()
	posts, ok := known["posts"]
	if !ok {
		t.Fatal("expected posts to be a known type")
	}
	if len(posts.Relationships) != 1 || posts.Relationships[0].Name != "author" {
		t.Errorf("posts.Relationships = %+v", posts.Relationships)
	}
	if _, ok := known["users"]; !ok {
		t.Error("expected users to be a known type")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/manifest.yaml"); err == nil {
		t.Fatal("expected an error loading a missing manifest")
	}
}
