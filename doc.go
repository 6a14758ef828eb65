// Package mazeforge generates, solves, and renders random perfect
// rectangular mazes.
//
// 🚀 What is mazeforge?
//
//	A small, deterministic maze toolkit built from per-concern packages:
//		• maze     — geometry primitives and the wall-state model
//		• carve    — randomized spanning-tree generation (seedable, worker spawning)
//		• solve    — unique tree-path lookup between exits or cells
//		• contour  — wall-follower tracer producing closed/open polylines
//		• render   — text, block, SVG and PNG output
//		• mazejson — canonical JSON import/export
//
// ✨ Why choose mazeforge?
//
//   - Reproducible – every random choice flows from an injected seed
//   - Invariant-checked – spanning-tree, wall-symmetry and trace-completeness
//     properties are part of the test suite
//   - Pure CPU – no I/O, no goroutines, no hidden global state in the core
//
// Quick ASCII example, a 2×2 maze with a north exit:
//
//	# ###
//	#   #
//	### #
//	#   #
//	#####
//
// The cmd/mazeforge binary wires the packages into a command-line generator:
//
//	go install github.com/mazeforge/mazeforge/cmd/mazeforge@latest
package mazeforge
