// Package cloven is an in-memory toolkit for discovering community
// structure in undirected graphs — from clique percolation to
// divisive edge-betweenness partitioning.
//
// 🚀 What is cloven?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: build simple undirected graphs, query and clone them safely
//		• Maximal cliques: Bron–Kerbosch enumeration with pivoting and streaming hooks
//		• k-clique communities: overlapping communities via clique percolation
//		• Girvan–Newman: lazy, step-by-step divisive partitioning by edge betweenness
//		• Builders: deterministic generators (complete, cycle, star, caveman, random)
//
// ✨ Why choose cloven?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted outputs and documented tie-breaking everywhere
//   - Lazy where it matters – consume only the Girvan–Newman steps you need
//   - Extensible – functional options and per-clique hooks for custom logic
//
// Everything is organized under five subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	cliques/  — Bron–Kerbosch maximal clique enumeration
//	kclique/  — overlapping k-clique (clique percolation) communities
//	girvan/   — edge betweenness & the Girvan–Newman partition sequence
//	builder/  — deterministic graph generators for tests and experiments
//
// Quick ASCII example:
//
//	    A───B        Two triangles sharing the edge A─D form a single
//	    │ ╲ │        3-clique community {A,B,C,D}; cutting the bridge
//	    C───D───E    D─E first is what Girvan–Newman does.
//
// Dive into the per-package doc.go files for full contracts, complexity
// notes, and runnable examples.
//
//	go get github.com/katalvlaran/cloven
package cloven
