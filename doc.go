// Package turtle provides turtle graphics on top of gogpu/gg.
//
// # Overview
//
// A Turtle is a cursor with a position, a heading and a pen. Moving it with
// the pen down draws a line; turning it changes the direction of the next
// move. Drawing is rendered through a pluggable Backend, so the same
// program can produce a PNG, an SVG document or a gg recording.
//
// # Quick Start
//
//	import (
//	    turtle "github.com/gogpu/gg-turtle"
//	    _ "github.com/gogpu/gg-turtle/backends/raster"
//	)
//
//	backend, _ := turtle.NewBackend("raster")
//	t, _ := turtle.New(backend, turtle.WithSize(500, 500))
//
//	for range 4 {
//	    t.Forward(200)
//	    t.Right(90)
//	}
//	t.Close()
//
//	backend.(turtle.FileBackend).SaveToFile("square.png")
//
// # Backends
//
// Backends register themselves by name when their package is imported:
//   - raster: gg.Context software rasterizer, PNG output
//   - scanline: rasterx scan converter into image.RGBA, PNG output
//   - svg: SVG document written with ajstarks/svgo
//   - vector: gg recording, exported through any gg recording backend
//
// # Surfaces
//
// Surface is the minimal command set (forward, left, right, pen up, pen
// down, move to) shared by Turtle and Recorder. Algorithms written against
// Surface, such as the fractal package, can draw on a canvas or be
// captured as a command list for inspection.
//
// # Undo
//
// Every Turtle command is an undo step. Undo restarts the backend canvas
// and replays the remaining history; WithUndoBuffer bounds how far back
// Undo reaches, and WithUndoBuffer(0) keeps no history at all.
//
// # Coordinate System
//
// Turtle coordinates are centred on the canvas:
//   - Origin (0,0) at the centre
//   - X increases right
//   - Y increases up
//   - Headings in degrees, 0 is east, increases counter-clockwise
//     (Degrees and Radians change the unit per turtle)
package turtle

// Version is the current version of the library.
const Version = "0.1.0"
