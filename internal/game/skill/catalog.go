package skill

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog holds validated skill definitions by ID.
// It is read-only after loading and safe for concurrent reads.
type Catalog struct {
	skills map[string]*Definition
}

// NewCatalog validates and indexes defs.
//
// Postcondition: Returns an error on the first invalid or duplicate definition.
func NewCatalog(defs ...*Definition) (*Catalog, error) {
	c := &Catalog{skills: make(map[string]*Definition, len(defs))}
	for i, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("skill: definition %d is empty", i)
		}
		valid, err := NewDefinition(d)
		if err != nil {
			return nil, err
		}
		if _, dup := c.skills[valid.ID]; dup {
			return nil, fmt.Errorf("skill: duplicate skill id %q", valid.ID)
		}
		c.skills[valid.ID] = valid
	}
	return c, nil
}

// Skill returns the definition for id.
func (c *Catalog) Skill(id string) (*Definition, bool) {
	d, ok := c.skills[id]
	return d, ok
}

// IDs returns every skill id in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.skills))
	for id := range c.skills {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// LoadSkills reads every *.yaml / *.yml file in dir as one Definition.
// Unknown fields are rejected.
//
// Precondition: dir is a readable directory path.
// Postcondition: Returns a catalog of valid definitions or the first error.
func LoadSkills(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadSkills: cannot read directory %q: %w", dir, err)
	}
	var defs []*Definition
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadSkills: cannot read file %q: %w", path, err)
		}
		var d Definition
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("LoadSkills: cannot parse file %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	c, err := NewCatalog(defs...)
	if err != nil {
		return nil, fmt.Errorf("LoadSkills: %w", err)
	}
	return c, nil
}
