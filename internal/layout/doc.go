// Package layout implements a retained-tree constraint solver for
// rectangular UI nodes.
//
// Nodes live in an arena addressed by [NodeID]; each carries a [Style]
// describing sizing policy (fixed, fit-to-content, grow-to-fill), padding,
// child gap, and stacking direction. The main entry point is [Calculate],
// which resolves a concrete size and absolute position for every node in
// three passes: fit sizing (post-order), grow distribution (pre-order),
// and position assignment (pre-order).
//
// Types are re-exported through the root quilt package for public consumption.
package layout
