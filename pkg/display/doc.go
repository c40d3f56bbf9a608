// Package display composes skin assets into the widget tree of a
// Minesweeper window. Each widget pairs a layout box with the pasting
// behavior of its assets: sprites are fixed-size stamps, grid tiles repeat
// or stretch to fill their resolved rectangle, and composites (counters,
// the panel, the board, the full display) wire borders, backgrounds and
// cells together so the whole window sizes itself from the skin alone.
package display
