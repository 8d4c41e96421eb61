// Package hostdoc stores the project document combinations are placed into.
//
// A project document is a single SQLite file holding three tables:
//   - catalog_item: the instantiable types, each either active or awaiting
//     activation.
//   - element: existing elements a placement can be anchored on. An element
//     may lack a point location.
//   - instance: instances created by placements.
//
// Reads go straight to the connection. Placement writes go through a
// UnitOfWork, a transaction that implements catalog.Host and is committed or
// rolled back as a whole by the caller.
package hostdoc
