// Package catalog declares the host capabilities placement depends on.
//
// The host owns the catalog of instantiable types and creates instances; the
// placement engine only sees these interfaces. Every call is synchronous.
package catalog

import (
	"errors"

	"github.com/danieljhkim/combos/internal/combo"
)

// ErrNotFound indicates an identifier that resolves to no catalog item.
var ErrNotFound = errors.New("catalog item not found")

// Item is a catalog entry that instances can be created from.
type Item struct {
	// ID is the host-stable identifier stored in combinations.
	ID string `json:"id"`

	// FamilyName is the catalog family.
	FamilyName string `json:"familyName"`

	// TypeName is the type within the family.
	TypeName string `json:"typeName"`

	// Active is false when the host must activate the item before use.
	Active bool `json:"active"`
}

// RequiresActivation reports whether Activate must run before Instantiate.
func (i Item) RequiresActivation() bool {
	return !i.Active
}

// DisplayIdentity returns "family : type".
func (i Item) DisplayIdentity() string {
	return i.FamilyName + " : " + i.TypeName
}

// InstanceHandle identifies an instance created by the host.
type InstanceHandle string

// Resolver maps a stable identifier to a catalog item.
type Resolver interface {
	// Resolve returns the item for id, or an error wrapping ErrNotFound.
	Resolve(id string) (Item, error)
}

// Activator prepares an inactive item for instantiation.
type Activator interface {
	Activate(item Item) error
}

// Instantiator creates one instance of item at position.
type Instantiator interface {
	Instantiate(item Item, position combo.Point) (InstanceHandle, error)
}

// Host bundles every capability placement needs.
type Host interface {
	Resolver
	Activator
	Instantiator
}
