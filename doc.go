// Package quilt provides a retained-tree layout engine for rectangular UIs.
//
// Users import this single package for the complete public API: tree
// construction, sizing policy, the per-frame layout passes, and the draw
// traversal that emits renderable geometry through a [Renderer] backend.
package quilt
