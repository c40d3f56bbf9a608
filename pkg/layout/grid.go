package layout

import "fmt"

// Grid arranges children in a table of rows and columns.
//
// Each column and row carries an expansion weight (default 1) and a match
// flag (default true). Matched tracks force their members to the shared
// resolved width or height; weights control how excess space is divided when
// the grid grows beyond its minimum.
//
// Excess is distributed with the cumulative-floor rule: the cumulative
// expansion through track i is floor(excess * cumWeight[i] / totalWeight) and
// each track receives the successive difference. The per-track amounts
// therefore always sum to the excess exactly, with no rounding drift, and
// the allocation is deterministic and monotonic in the weights.
type Grid struct {
	*Base

	cells [][]Box
	rows  int
	cols  int

	colWeights []int
	rowWeights []int
	colMatch   []bool
	rowMatch   []bool

	// Per-track minimums derived from the children, and the resolved
	// sizes after the most recent Expand. Offsets are cumulative sums of
	// the resolved sizes.
	minColWidths  []int
	minRowHeights []int
	colWidths     []int
	rowHeights    []int

	cumColWeights []int
	cumRowWeights []int
	sumColWeights int
	sumRowWeights int
}

type gridConfig struct {
	colWeights []int
	rowWeights []int
	colMatch   []bool
	rowMatch   []bool
}

// GridOption configures a Grid at construction.
type GridOption func(*gridConfig)

// WithColumnWeights sets per-column expansion weights. Weight 0 pins a
// column at its minimum width.
func WithColumnWeights(weights ...int) GridOption {
	return func(c *gridConfig) { c.colWeights = weights }
}

// WithRowWeights sets per-row expansion weights. Weight 0 pins a row at its
// minimum height.
func WithRowWeights(weights ...int) GridOption {
	return func(c *gridConfig) { c.rowWeights = weights }
}

// WithColumnMatch sets per-column match flags. A matched column forces every
// member to the column's resolved width.
func WithColumnMatch(match ...bool) GridOption {
	return func(c *gridConfig) { c.colMatch = match }
}

// WithRowMatch sets per-row match flags. A matched row forces every member
// to the row's resolved height.
func WithRowMatch(match ...bool) GridOption {
	return func(c *gridConfig) { c.rowMatch = match }
}

// NewGrid creates a grid from a row-major table of children. Every row must
// have the same length and the grid exclusively owns its children.
//
// Matched tracks immediately force their members to the shared minimum; the
// resulting *TooSmallError or *NotExpandableError from an incompatible
// member propagates unchanged.
func NewGrid(cells [][]Box, opts ...GridOption) (*Grid, error) {
	rows := len(cells)
	if rows == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("layout: grid needs at least one cell")
	}
	cols := len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("layout: grid row %d has %d cells, want %d", r, len(row), cols)
		}
	}

	cfg := gridConfig{
		colWeights: uniformInts(cols, 1),
		rowWeights: uniformInts(rows, 1),
		colMatch:   uniformBools(cols, true),
		rowMatch:   uniformBools(rows, true),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(rows, cols); err != nil {
		return nil, err
	}

	g := &Grid{
		cells:      cells,
		rows:       rows,
		cols:       cols,
		colWeights: cfg.colWeights,
		rowWeights: cfg.rowWeights,
		colMatch:   cfg.colMatch,
		rowMatch:   cfg.rowMatch,
	}

	g.minColWidths = make([]int, cols)
	g.minRowHeights = make([]int, rows)
	for r, row := range cells {
		for c, cell := range row {
			min := cell.MinSize()
			if min.W > g.minColWidths[c] {
				g.minColWidths[c] = min.W
			}
			if min.H > g.minRowHeights[r] {
				g.minRowHeights[r] = min.H
			}
		}
	}

	g.cumColWeights, g.sumColWeights = accumulate(g.colWeights)
	g.cumRowWeights, g.sumRowWeights = accumulate(g.rowWeights)

	// Force matched members to the shared minimum up front.
	for c := 0; c < cols; c++ {
		if !g.colMatch[c] {
			continue
		}
		for r := 0; r < rows; r++ {
			if err := cells[r][c].Expand(g.minColWidths[c], Keep); err != nil {
				return nil, err
			}
		}
	}
	for r := 0; r < rows; r++ {
		if !g.rowMatch[r] {
			continue
		}
		for c := 0; c < cols; c++ {
			if err := cells[r][c].Expand(Keep, g.minRowHeights[r]); err != nil {
				return nil, err
			}
		}
	}

	g.colWidths = append([]int(nil), g.minColWidths...)
	g.rowHeights = append([]int(nil), g.minRowHeights...)

	g.Base = NewBase(sum(g.minColWidths), sum(g.minRowHeights))
	g.Base.moved = g.updateChildOffsets
	g.updateChildOffsets()
	return g, nil
}

// NewRow creates a single-row grid, the degenerate horizontal-split case.
func NewRow(children []Box, opts ...GridOption) (*Grid, error) {
	return NewGrid([][]Box{children}, opts...)
}

// NewColumn creates a single-column grid, the degenerate vertical-split case.
func NewColumn(children []Box, opts ...GridOption) (*Grid, error) {
	cells := make([][]Box, len(children))
	for i, child := range children {
		cells[i] = []Box{child}
	}
	return NewGrid(cells, opts...)
}

func (c *gridConfig) validate(rows, cols int) error {
	if len(c.colWeights) != cols {
		return fmt.Errorf("layout: %d column weights for %d columns", len(c.colWeights), cols)
	}
	if len(c.rowWeights) != rows {
		return fmt.Errorf("layout: %d row weights for %d rows", len(c.rowWeights), rows)
	}
	if len(c.colMatch) != cols {
		return fmt.Errorf("layout: %d column match flags for %d columns", len(c.colMatch), cols)
	}
	if len(c.rowMatch) != rows {
		return fmt.Errorf("layout: %d row match flags for %d rows", len(c.rowMatch), rows)
	}
	for i, w := range c.colWeights {
		if w < 0 {
			return fmt.Errorf("layout: negative weight %d for column %d", w, i)
		}
	}
	for i, w := range c.rowWeights {
		if w < 0 {
			return fmt.Errorf("layout: negative weight %d for row %d", w, i)
		}
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cell returns the child at the given row and column.
func (g *Grid) Cell(row, col int) Box { return g.cells[row][col] }

// ColumnWidths returns the resolved column widths. The returned slice is
// owned by the grid and must not be modified.
func (g *Grid) ColumnWidths() []int { return g.colWidths }

// RowHeights returns the resolved row heights. The returned slice is owned
// by the grid and must not be modified.
func (g *Grid) RowHeights() []int { return g.rowHeights }

// Expand resizes the grid and redistributes the excess over its tracks.
//
// The grid's own minimum is validated before anything mutates. An axis whose
// weights sum to zero is left entirely at its minimum even when asked to
// grow; the other axis and the offset pass still run. Matched members
// receive the new track size via their own Expand, so a locked leaf in a
// growing track aborts the operation.
func (g *Grid) Expand(width, height int) error {
	if err := g.checkExpand(width, height); err != nil {
		return err
	}

	if width != Keep && g.sumColWeights > 0 {
		excess := width - g.minWidth
		prev := 0
		for c := 0; c < g.cols; c++ {
			cum := excess * g.cumColWeights[c] / g.sumColWeights
			g.colWidths[c] = g.minColWidths[c] + cum - prev
			prev = cum
			if !g.colMatch[c] {
				continue
			}
			for r := 0; r < g.rows; r++ {
				if err := g.cells[r][c].Expand(g.colWidths[c], Keep); err != nil {
					return err
				}
			}
		}
	}

	if height != Keep && g.sumRowWeights > 0 {
		excess := height - g.minHeight
		prev := 0
		for r := 0; r < g.rows; r++ {
			cum := excess * g.cumRowWeights[r] / g.sumRowWeights
			g.rowHeights[r] = g.minRowHeights[r] + cum - prev
			prev = cum
			if !g.rowMatch[r] {
				continue
			}
			for c := 0; c < g.cols; c++ {
				if err := g.cells[r][c].Expand(Keep, g.rowHeights[r]); err != nil {
					return err
				}
			}
		}
	}

	g.apply(width, height)
	g.updateChildOffsets()
	return nil
}

// updateChildOffsets rewrites every child's parent offset from the resolved
// track sizes. Column left-edges and row top-edges are cumulative sums.
func (g *Grid) updateChildOffsets() {
	off := g.Offset()
	y := off.Y
	for r, row := range g.cells {
		x := off.X
		for c, cell := range row {
			cell.SetParentOffset(x, y)
			x += g.colWidths[c]
		}
		y += g.rowHeights[r]
	}
}

// Draw recurses into every child in row-major order. Cells are disjoint, so
// the order only matters for determinism.
func (g *Grid) Draw(p Painter) error {
	for _, row := range g.cells {
		for _, cell := range row {
			if err := cell.Draw(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func uniformInts(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func uniformBools(n int, v bool) []bool {
	s := make([]bool, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func accumulate(weights []int) (cum []int, total int) {
	cum = make([]int, len(weights))
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	return cum, total
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}

var _ Box = (*Grid)(nil)
