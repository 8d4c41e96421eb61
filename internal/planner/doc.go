// Package planner handles the planning phase of placement.
//
// The planner turns a combination and an anchor point into a deterministic
// list of steps, one per item, each with its target position and attempt
// count. It touches no host state, so the same plan backs both a real
// placement and a dry run.
//
// Key responsibilities:
//   - Compute anchor + (offsetX, offsetY, 0) for every item
//   - Keep stored item order
//   - Skip items whose quantity is not positive, recording why
package planner
