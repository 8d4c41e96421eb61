package combo

import (
	"fmt"
	"strings"
)

// Item is a single catalog reference inside a combination.
type Item struct {
	// CatalogItemID is the host-stable identifier used for resolution.
	CatalogItemID string `json:"catalogItemId" yaml:"catalogItemId"`

	// FamilyName is a display copy of the catalog family name.
	FamilyName string `json:"displayFamilyName" yaml:"displayFamilyName"`

	// TypeName is a display copy of the catalog type name.
	TypeName string `json:"displayTypeName" yaml:"displayTypeName"`

	// Quantity is how many instances are created, always >= 1.
	Quantity int `json:"quantity" yaml:"quantity"`

	// OffsetX is the X offset from the anchor.
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`

	// OffsetY is the Y offset from the anchor.
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
}

// DisplayIdentity returns "family : type", the key used in missing-item reports.
func (i Item) DisplayIdentity() string {
	return fmt.Sprintf("%s : %s", i.FamilyName, i.TypeName)
}

func (i Item) String() string {
	return fmt.Sprintf("%s (Qty: %d, dX: %g, dY: %g)", i.DisplayIdentity(), i.Quantity, i.OffsetX, i.OffsetY)
}

// Set is a named combination of items.
type Set struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// NewSet creates a Set with an empty, non-nil item list.
func NewSet(name string) Set {
	return Set{Name: name, Items: []Item{}}
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return Set{Name: s.Name, Items: items}
}

// TotalQuantity returns the number of instances a full placement would attempt.
func (s Set) TotalQuantity() int {
	total := 0
	for _, item := range s.Items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}

func (s Set) String() string {
	return s.Name
}

// Collection is the full ordered list of stored sets.
type Collection []Set

// Clone returns a deep copy of the collection. A nil collection clones to an empty one.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, s := range c {
		out[i] = s.Clone()
	}
	return out
}

// Names returns the set names in order.
func (c Collection) Names() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name
	}
	return names
}

// IndexOf returns the index of the set whose name matches case-insensitively,
// or -1. The set at skip is ignored; pass -1 to consider every set.
func (c Collection) IndexOf(name string, skip int) int {
	for i, s := range c {
		if i == skip {
			continue
		}
		if SameName(s.Name, name) {
			return i
		}
	}
	return -1
}

// SameName reports whether two set names collide.
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// NormalizeName trims surrounding whitespace from a set name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Point is a position in the host's coordinate frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns p translated by (dx, dy, dz).
func (p Point) Add(dx, dy, dz float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
