// Package kleinian is your in-memory playground for building two-generator
// Kleinian groups and sampling their limit sets — from raw 2×2 complex
// matrix algebra to finished PNG renderings.
//
// 🚀 What is kleinian?
//
//	A small, deterministic library that brings together:
//		• Matrix algebra: unimodular 2×2 complex matrices (Möbius maps)
//		• Inversive geometry: circles as Hermitian coefficient matrices
//		• Group recipes: commutator, xx-relator and x-relator constructions
//		• Traversal: best-first expansion of the group's Cayley graph,
//		  largest-circle-first, over freely reduced words only
//		• Windowing: bounding-box fit of the point cloud onto a pixel grid
//		• Rendering: grayscale and RGBA rasters, saved as PNG
//
// ✨ Why choose kleinian?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same traces in, same point cloud out, every run
//   - Typed failures – every degenerate input maps to a sentinel error
//   - Extensible – observation hooks (OnAdvance) for custom instrumentation
//
// Under the hood, everything is organized under six subpackages:
//
//	algebra/  — 2×2 complex matrices: product, inverse, trace, dagger
//	circle/   — circles in inversive coordinates + Möbius circle action
//	group/    — generator quadruples from trace parameters (three schemes)
//	limitset/ — priority-queue frontier over the group's Cayley graph
//	window/   — similarity transform from the complex plane to pixels
//	render/   — images from point clouds; PNG encoding helpers
//
// Quick ASCII example:
//
//	      .-""-.
//	    .'  ()  '.      four mutually tangent circles seed the frontier;
//	   (  ()  ()  )     every expansion step refines the picture with the
//	    '.  ()  .'      two largest circles not yet visited.
//	      '-..-'
//
// Dive into examples/ for runnable scenarios, or start with
// limitset.FromTraces(2, 2, n) — the Apollonian gasket.
//
//	go get github.com/katalvlaran/kleinian
package kleinian
