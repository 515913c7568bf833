// Package rtree provides an in-memory, two-dimensional R-Tree for indexing
// page content such as words, lines and chunks by their bounding rectangles.
//
// Items implement Spatial. Queries reduce their shape to its bounding
// rectangle and come in two flavours:
//
//   - OverlappedBy uses open intervals: items that merely touch the query at
//     an edge or corner are not reported.
//   - ContainedBy uses closed intervals: items flush with the query's edge
//     are reported.
//
// Insertion follows Guttman's original algorithm with the quadratic split.
// Load builds a tree in bulk.
package rtree
