package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RelationshipDecl documents one relationship a manifest resource is
// expected to carry. It is descriptive only; nothing in this package
// builds a runtime Relationship from it.
type RelationshipDecl struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"` // "belongsTo" or "hasMany"
	RelatedType string `yaml:"relatedType"`
}

// ResourceDecl documents the shape of one JSON:API resource type.
type ResourceDecl struct {
	Type          string             `yaml:"type"`
	Description   string             `yaml:"description,omitempty"`
	Attributes    []string           `yaml:"attributes,omitempty"`
	Relationships []RelationshipDecl `yaml:"relationships,omitempty"`
}

// Manifest is the top-level YAML document: a flat list of resource
// declarations.
type Manifest struct {
	Resources []ResourceDecl `yaml:"resources"`
}

// Load reads and parses a Manifest from path.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return &m, nil
}

// KnownTypes indexes the manifest's resources by their wire type name.
func (m *Manifest) KnownTypes() map[string]*ResourceDecl {
	out := make(map[string]*ResourceDecl, len(m.Resources))
	for i := range m.Resources {
		out[m.Resources[i].Type] = &m.Resources[i]
	}
	return out
}
