package stores

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/danieljhkim/combos/internal/combo"
)

// ErrDuplicateName indicates an exchange document naming two sets alike.
var ErrDuplicateName = errors.New("duplicate combination name")

// ExportYAML writes the collection in the YAML exchange format.
// Field names match the JSON document.
func ExportYAML(w io.Writer, c combo.Collection) error {
	if c == nil {
		c = combo.Collection{}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal combinations: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ImportYAML reads a collection from the YAML exchange format. Unlike Load,
// it is strict: every set must validate and names must be unique.
func ImportYAML(r io.Reader) (combo.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}

	var c combo.Collection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse import: %w", err)
	}

	for i, set := range c {
		if err := combo.Validate(set); err != nil {
			return nil, fmt.Errorf("combination %d (%q): %w", i+1, set.Name, err)
		}
		if j := c[:i].IndexOf(set.Name, -1); j >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, set.Name)
		}
		c[i].Name = combo.NormalizeName(set.Name)
		if c[i].Items == nil {
			c[i].Items = []combo.Item{}
		}
	}
	if c == nil {
		c = combo.Collection{}
	}

	return c, nil
}
