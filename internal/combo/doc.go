// Package combo defines the combination data model.
//
// A combination (Set) is a named, ordered list of catalog item references.
// Each Item carries a replication count and a planar offset measured from
// the anchor point supplied at placement time. The whole list of sets
// (Collection) is the unit of persistence.
//
// Key components:
//   - Item: a catalog reference with quantity and offsets
//   - Set: a named list of items, unique by case-insensitive name
//   - Collection: every stored set, in order
//   - Point: a position in the host's coordinate frame
//   - Validate / ParseQuantity / ParseOffset: authoring-time checks
package combo
