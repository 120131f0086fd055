package action

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog holds validated action definitions by ID.
// It is read-only after loading and safe for concurrent reads.
type Catalog struct {
	defs map[string]*Definition
}

// NewCatalog validates and indexes defs.
//
// Postcondition: Returns an error on the first invalid or duplicate definition.
func NewCatalog(defs ...*Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]*Definition, len(defs))}
	for i, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("action: definition %d is empty", i)
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.defs[d.ID]; dup {
			return nil, fmt.Errorf("action: duplicate action id %q", d.ID)
		}
		c.defs[d.ID] = d
	}
	return c, nil
}

// Action returns the definition for id.
func (c *Catalog) Action(id string) (*Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// IDs returns every action id in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.defs))
	for id := range c.defs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ItemIDs returns every item id referenced as an input or output.
func (c *Catalog) ItemIDs() []string {
	seen := map[string]bool{}
	for _, d := range c.defs {
		for _, in := range d.InputItems {
			seen[in.ItemID] = true
		}
		for _, out := range d.OutputItems {
			seen[out.ItemID] = true
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// LoadActions reads every *.yaml / *.yml file in dir. A file holds either one
// definition or a top-level "actions" list. Unknown fields are rejected.
//
// Precondition: dir is a readable directory path.
// Postcondition: Returns a catalog of valid definitions or the first error.
func LoadActions(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadActions: cannot read directory %q: %w", dir, err)
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
			return nil, fmt.Errorf("LoadActions: cannot read file %q: %w", path, err)
		}
		parsed, err := decodeActions(data)
		if err != nil {
			return nil, fmt.Errorf("LoadActions: cannot parse file %q: %w", path, err)
		}
		defs = append(defs, parsed...)
	}
	c, err := NewCatalog(defs...)
	if err != nil {
		return nil, fmt.Errorf("LoadActions: %w", err)
	}
	return c, nil
}

func decodeActions(data []byte) ([]*Definition, error) {
	var shape map[string]yaml.Node
	if err := yaml.Unmarshal(data, &shape); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if _, list := shape["actions"]; list {
		var file struct {
			Actions []*Definition `yaml:"actions"`
		}
		if err := dec.Decode(&file); err != nil {
			return nil, err
		}
		return file.Actions, nil
	}
	var d Definition
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return []*Definition{&d}, nil
}
