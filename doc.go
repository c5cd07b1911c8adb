// Package mazeflood carves perfect mazes with randomized Kruskal, searches
// them breadth-first or depth-first, and replays the search as a "flood"
// animation followed by a walk of the solution path.
//
// 🚀 What is in the box?
//
//	• unionfind: disjoint sets over integer ids, optional path compression
//	• grid     : cell arena, weighted candidate edges, passages and walls
//	• kruskal  : spanning-tree carving from shuffled candidate edges
//	• traverse : one search engine, FIFO (BFS) or LIFO (DFS) frontier
//	• flood    : tick-driven replay: flood the history, then walk the path
//	• scene    : pure board snapshot plus ASCII and PNG renderers
//	• game     : rows → columns, key commands, tick, logging hooks
//
// The binary under cmd/mazeflood plays a replay in the terminal or serves
// games over HTTP (gin, Prometheus metrics).
//
// ✨ Quick start
//
//	g, _ := grid.New(20, game.Columns(20), grid.WithSeed(7))
//	_, _ = kruskal.Generate(g)
//	res, _ := traverse.BFS(g)
//	r := flood.New(g)
//	r.Load(res)
//	r.Run(0)
//	fmt.Print(scene.ASCII(scene.Build(g)))
//
// Start is the top-left cell, goal the bottom-right. Cells carry ids in
// row-major order, and every package speaks in those ids.
package mazeflood
