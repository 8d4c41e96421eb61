package engine

import (
	"fmt"
	"io"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/stores"
)

// List returns a summary of every stored combination in stored order.
func (e *Engine) List() []SetSummary {
	coll := e.registry.List()
	out := make([]SetSummary, len(coll))
	for i, s := range coll {
		out[i] = summarize(s)
	}
	return out
}

// Show returns the combination named name.
func (e *Engine) Show(name string) (combo.Set, error) {
	_, set, err := e.registry.Find(name)
	return set, err
}

// Remove deletes the combination named name and returns it.
func (e *Engine) Remove(name string) (combo.Set, error) {
	idx, _, err := e.registry.Find(name)
	if err != nil {
		return combo.Set{}, err
	}
	removed, err := e.registry.Delete(idx)
	if err != nil {
		return combo.Set{}, err
	}
	e.logger.Info("combination deleted", "name", removed.Name)
	return removed, nil
}

// Export writes every stored combination to w as YAML.
func (e *Engine) Export(w io.Writer) error {
	return stores.ExportYAML(w, e.registry.List())
}

// Import reads combinations from r. Without Replace, imported sets are
// appended and any name already stored fails the whole import.
func (e *Engine) Import(r io.Reader, req ImportRequest) (*ImportResult, error) {
	imported, err := stores.ImportYAML(r)
	if err != nil {
		return nil, err
	}

	merged := imported
	if !req.Replace {
		merged = e.registry.List()
		merged = append(merged, imported...)
	}

	if err := e.registry.Replace(merged); err != nil {
		return nil, fmt.Errorf("failed to import combinations: %w", err)
	}

	e.logger.Info("combinations imported", "count", len(imported), "replace", req.Replace)
	return &ImportResult{Imported: len(imported), Total: len(merged), Replaced: req.Replace}, nil
}
