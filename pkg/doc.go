// Package pkg provides the core libraries for Sweepskin board rendering.
//
// # Overview
//
// Sweepskin assembles classic Minesweeper boards out of skin sprite packs.
// A skin supplies the raw PNG assets, the layout engine arranges them, and
// the renderer composites the result into a single image. The pkg directory
// is organized into five main areas:
//
//  1. [layout] - Constraint layout engine (boxes, grids, layers, borders)
//  2. [skin] - Skin loading, manifests, and validation
//  3. [display] - Board composition (tiles, counters, panel, display)
//  4. [render] - Raster compositing and PNG encoding
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Sweepskin:
//
//	Skin directory or archive
//	         ↓
//	    [skin] package (load assets, validate)
//	         ↓
//	    [display] package (compose the board with [layout])
//	         ↓
//	    [render] package (composite + encode)
//	         ↓
//	    PNG output
//
// # Quick Start
//
// Render a board with default dimensions from the skin manifest:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Skin: "./skins/classic"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("board.png", result.PNG, 0o644)
//
// Supporting packages: [geom] for integer geometry primitives, [errors] for
// coded errors with user-facing messages, [cache] for artifact caching
// (file, Redis, or none), [observability] for pipeline and HTTP hooks, and
// [buildinfo] for version metadata.
package pkg
