// Package lattice models the cell geometry of cooperative decoding: an
// undirected graph whose nodes are basestations addressed by integer grid
// coordinates and whose edges mark interfering neighbor pairs.
//
// The package wraps gonum's simple.UndirectedGraph behind a coordinate
// arena, so callers speak (x, y) pairs while adjacency queries run on
// compact integer ids. Construction is either manual (New, AddNode,
// AddEdge) or via Honeycomb, which builds the hexagonal cell layout used
// by cooperative multi-point composition: a triangular grid of side
// 2·scale+1 with the two off-diagonal corner triangles trimmed away.
//
// Node and neighbor enumerations are returned in sorted coordinate order
// (x first, then y) so downstream model construction is deterministic.
package lattice
