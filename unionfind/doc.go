// Package unionfind provides a disjoint-set forest over dense integer identifiers,
// the connectivity bookkeeping behind Kruskal-style maze carving.
//
// What
//
//   - Every identifier 0..n-1 starts as its own representative (identity mapping).
//   - Find follows the representative chain until it reaches a fixed point
//     (parent[x] == x).
//   - Union rewrites exactly one mapping: parent[rootA] = rootB. Callers resolve
//     both representatives with Find first, the same way the maze generator does.
//
// Determinism
//
//	Union never inspects ranks or sizes, so the shape of the forest depends only on
//	the order of Union calls. Two runs over the same edge order produce identical
//	representatives.
//
// Complexity
//
//   - New:   O(n) time and memory.
//   - Find:  O(depth) without compression; amortized near O(1) with
//     WithPathCompression.
//   - Union: O(1).
//
// Errors
//
//   - ErrInvalidSize: negative element count passed to New.
package unionfind
