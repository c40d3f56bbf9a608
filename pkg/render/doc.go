// Package render rasterizes a resolved layout tree into an image.
//
// [Canvas] is the drawing surface handed to the tree's draw pass: pastes
// are alpha-composited and automatically clipped at the canvas edges, so
// tile repeats may safely overhang their box. [Render] wraps the common
// case of sizing a canvas to a box and drawing it, and the sink functions
// encode the result as PNG.
package render
