// Package layout computes exact integer geometry for trees of rectangular
// boxes. A caller builds the tree bottom-up from leaves sized by external
// image dimensions, wraps them in composites, and calls Expand on the root;
// sizes propagate top-down, followed by an eager offset pass. Draw is a pure
// read of the resolved geometry.
//
// # Composites
//
// Three composites cover every arrangement the display needs:
//
//   - [Grid] places children in rows and columns. Each column and row carries
//     an expansion weight and a match flag; excess space is distributed with
//     the cumulative-floor rule so the resolved track sizes always sum to the
//     requested size exactly.
//   - [Layer] stacks children on the same rectangle, drawn back-to-front.
//   - [Border] wraps a single child with fixed four-sided padding.
//
// Single-row and single-column arrangements are just grids; use [NewRow] and
// [NewColumn] instead of dedicated split types.
//
// # Sizing rules
//
// Every box has an immutable minimum size. Expand below the minimum fails
// with [TooSmallError]; resizing a locked axis of a fixed-size leaf fails
// with [NotExpandableError]. Failed expansions propagate to the caller and
// abort the operation; the engine never retries.
//
// # Concurrency
//
// A tree is exclusively owned and mutated in place. A single caller must
// drive one Expand/Draw pass to completion before starting another;
// concurrent calls on the same tree are unsupported.
package layout
