// Package kruskal carves a perfect maze out of a fully open grid.Grid board
// using randomized Kruskal's algorithm.
//
// What & Why
//
//   - Every candidate passage carries a random weight. Processing candidates in
//     ascending weight order and keeping only those that join two previously
//     separate regions yields a minimum spanning tree over the random weights,
//     which is a uniformly structured maze: exactly one path between any two cells.
//
//   - Rejected candidates are not merely skipped: their endpoints are unlinked in
//     the grid, which is how walls appear.
//
// Algorithm
//
//  1. Stable-sort the candidates by weight (CompareEdges); ties keep candidate order.
//  2. Start a unionfind.UnionFind over every cell id.
//  3. For each edge: if Find(A) != Find(B), keep it and Union the two roots;
//     otherwise Disconnect A and B.
//  4. Every candidate is processed exactly once; there is no early exit once the
//     tree is complete, because the remaining candidates still have to become walls.
//
// Determinism
//
//	Given the same candidate list (same grid seed), the resulting maze is identical.
//
// Complexity
//
//   - Time:  O(E log E) for the sort plus O(E·d) for Find, d = forest depth.
//   - Space: O(V + E).
//
// Errors
//
//   - ErrNilGrid:        grid is nil.
//   - ErrEdgeOutOfRange: an edge names a cell the grid does not have.
package kruskal
