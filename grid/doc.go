// Package grid models a rectangular maze board as an arena of cells addressed by
// integer id, together with the candidate edge set a maze generator prunes.
//
// What:
//
//   - Grid owns rows×cols cells with sequential ids in row-major order.
//   - CandidateEdges emits one weighted edge per vertical adjacency, then one per
//     horizontal adjacency, linking both endpoints as it goes (the "all open" view).
//   - Disconnect erects a wall; Passages and Walls expose the carved result.
//   - Each cell carries a display State the flood replay writes.
//   - Validate checks the spanning-tree invariant (connected, exactly Len()-1 passages).
//
// Identity:
//
//	Start() is always cell 0 (top-left); Goal() is always the last cell of the
//	last row. Adjacency is stored as id lists, so cells never point at each other.
//
// Complexity:
//
//   - New:                 O(R×C) time and memory.
//   - CandidateEdges:      O(R×C).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidDimensions: rows < 1 or cols < 1, reported before allocation.
//   - ErrTooLarge: rows×cols overflows.
//   - ErrNotSpanningTree: Validate found a disconnected or cyclic maze.
package grid
