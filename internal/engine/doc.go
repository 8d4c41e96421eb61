// Package engine is the command layer between the CLI and the combination
// core.
//
// The engine package coordinates the registry, the project document, the
// placement engine and the interactive dialogs. Interactive commands return
// an Outcome; the non-interactive ones return values and errors.
//
// Key components:
//   - Manage: the create / edit / delete loop over saved combinations
//   - Place: select a combination and an anchor, then place it in one unit of work
//   - List/Show/Remove/Export/Import: scripted access to the collection
package engine
