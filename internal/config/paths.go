// Package config manages combos configuration and filesystem paths.
//
// The default root is ~/.combos/ and can be moved with COMBOS_ROOT. The root
// holds the combinations document, the default project document and an
// optional config.yaml read through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by combos.
type Paths struct {
	// Root is the base directory for all combos data (default: ~/.combos)
	Root string

	// Store is the combinations document
	Store string

	// Document is the default project document
	Document string

	// Config is the path to the optional config file
	Config string
}

// DefaultPaths returns the default paths for combos.
// The root can be overridden with COMBOS_ROOT.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("COMBOS_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".combos")
	}

	return PathsAt(root), nil
}

// PathsAt returns the layout rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Store:    filepath.Join(root, "combinations.json"),
		Document: filepath.Join(root, "project.db"),
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates the root directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
